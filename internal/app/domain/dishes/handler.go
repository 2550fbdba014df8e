package dishes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/components/alert"
	"github.com/FACorreiaa/go-supra/internal/app/components/searchbar"
	"github.com/FACorreiaa/go-supra/internal/app/components/tabs"
	"github.com/FACorreiaa/go-supra/internal/app/handlers"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// StateProvider returns the State of the requesting browser.
type StateProvider func(c *gin.Context) *State

type Handler struct {
	base        *handlers.BaseHandler
	service     *Service
	states      StateProvider
	suggestions []string
	logger      *zap.Logger
}

func NewHandler(base *handlers.BaseHandler, service *Service, states StateProvider, suggestions []string, logger *zap.Logger) *Handler {
	return &Handler{
		base:        base,
		service:     service,
		states:      states,
		suggestions: suggestions,
		logger:      logger,
	}
}

// ShowPage mounts the page: fresh state, one fetch of the canonical list.
func (h *Handler) ShowPage(c *gin.Context) {
	st := h.states(c)
	st.Reset()
	h.service.Load(c.Request.Context(), st)

	h.base.RenderPage(c, "S.U.P.R.A. - Dish Search", "Dishes", Page(st.Snapshot(), h.suggestions))
}

// Filter handles every keystroke and suggestion click.
func (h *Handler) Filter(c *gin.Context) {
	st := h.states(c)
	h.service.EnsureLoaded(c.Request.Context(), st)

	query, ok := c.GetQuery("q")
	if !ok {
		query = c.Query("searchQuery")
	}
	snap := h.service.Filter(c.Request.Context(), st, query)

	var comp templ.Component = Results(snap)
	if strings.HasPrefix(c.GetHeader("HX-Trigger"), searchbar.SuggestionPrefix) {
		comp = templ.Join(comp, searchbar.Input(query, resultsTarget, true))
	}
	h.base.Render(c, http.StatusOK, comp)
}

// Search handles the AI / image search form.
func (h *Handler) Search(c *gin.Context) {
	handlers.LimitBody(c)

	req, err := readSearchRequest(c)
	if err != nil {
		h.logger.Warn("Rejected search upload", zap.Error(err))
		h.base.RenderAlert(c, http.StatusBadRequest, alert.Props{
			Title:   "ფაილი ვერ წავიკითხე",
			Message: "The uploaded image could not be read.",
			Detail:  err.Error(),
		})
		return
	}

	st := h.states(c)
	snap, applied, err := h.service.Search(c.Request.Context(), st, req)
	if err != nil {
		h.base.RenderAlert(c, statusFor(err), alertFor(err))
		return
	}
	if !applied {
		// A newer search owns the results region.
		c.Header("HX-Reswap", "none")
		c.Status(http.StatusNoContent)
		return
	}
	h.base.Render(c, http.StatusOK, Results(snap))
}

// SetView switches between the cards and map views.
func (h *Handler) SetView(c *gin.Context) {
	st := h.states(c)
	h.service.EnsureLoaded(c.Request.Context(), st)
	snap, err := h.service.SetView(st, c.Query("mode"))
	if err != nil {
		h.base.RenderAlert(c, http.StatusBadRequest, alert.Props{
			Message: "Unknown view.",
			Detail:  err.Error(),
			Variant: alert.VariantInfo,
		})
		return
	}
	h.base.Render(c, http.StatusOK, Results(snap))
}

// Recommendations selects a recommendation tab.
func (h *Handler) Recommendations(c *gin.Context) {
	tab := models.ParseRecommendationTab(c.Query("tab"))
	st := h.states(c)
	h.service.EnsureLoaded(c.Request.Context(), st)
	st.SetTab(tab)
	h.base.Render(c, http.StatusOK, tabs.RecommendationTabs(tab))
}

func readSearchRequest(c *gin.Context) (backend.SearchRequest, error) {
	query := c.PostForm("searchQuery")
	if query == "" {
		query = c.PostForm("q")
	}
	image, err := handlers.ReadUpload(c, "file")
	if err != nil {
		return backend.SearchRequest{Query: query}, err
	}
	return backend.SearchRequest{Query: query, Image: image}, nil
}

func statusFor(err error) int {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, models.ErrEmptySearch):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

func alertFor(err error) alert.Props {
	if errors.Is(err, models.ErrEmptySearch) {
		return alert.Props{
			Title:   "შეიყვანეთ საძიებო სიტყვა",
			Message: "Type something or attach a photo to search.",
			Variant: alert.VariantInfo,
		}
	}
	props := alert.Props{
		Title:   "ძიება ვერ მოხერხდა",
		Message: "Search failed. The dishes shown were not changed.",
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		props.Detail = apiErr.Message
	}
	return props
}
