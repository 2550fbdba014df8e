package restaurants

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/components/alert"
	"github.com/FACorreiaa/go-supra/internal/app/handlers"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

type Handler struct {
	base    *handlers.BaseHandler
	service *Service
	logger  *zap.Logger
}

func NewHandler(base *handlers.BaseHandler, service *Service, logger *zap.Logger) *Handler {
	return &Handler{base: base, service: service, logger: logger}
}

// ShowPage lists every restaurant. A backend failure still renders the page.
func (h *Handler) ShowPage(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	h.base.RenderPage(c, "Restaurants - S.U.P.R.A.", "Restaurants", Page(list, err != nil))
}

func (h *Handler) Search(c *gin.Context) {
	handlers.LimitBody(c)

	image, err := handlers.ReadUpload(c, "image")
	if err != nil {
		h.logger.Warn("Rejected restaurant search upload", zap.Error(err))
		h.base.RenderAlert(c, http.StatusBadRequest, alert.Props{
			Message: "The uploaded image could not be read.",
			Detail:  err.Error(),
		})
		return
	}

	list, err := h.service.Search(c.Request.Context(), backend.SearchRequest{Query: c.PostForm("text"), Image: image})
	switch {
	case errors.Is(err, models.ErrEmptySearch):
		h.base.RenderAlert(c, http.StatusBadRequest, alert.Props{
			Title:   "შეიყვანეთ საძიებო სიტყვა",
			Message: "Describe what you are looking for or attach a photo.",
			Variant: alert.VariantInfo,
		})
		return
	case err != nil:
		props := alert.Props{
			Title:   "ძიება ვერ მოხერხდა",
			Message: "Restaurant search failed. The list shown was not changed.",
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			props.Detail = apiErr.Message
		}
		h.base.RenderAlert(c, http.StatusBadGateway, props)
		return
	}

	h.base.Render(c, http.StatusOK, Results(list, false))
}
