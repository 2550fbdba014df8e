package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/components/alert"
	"github.com/FACorreiaa/go-supra/internal/app/components/layout"
	"github.com/FACorreiaa/go-supra/internal/app/middleware"
	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/app/renderer"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) NewLayoutData(title, activeNav string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.MainNav,
		ActiveNav: activeNav,
	}
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Render(status, renderer.New(c.Request.Context(), status, component))
}

// RenderPage renders content inside the full layout.
func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	h.Render(c, http.StatusOK, layout.Page(h.NewLayoutData(title, activeNav, content)))
}

// RenderAlert answers an htmx request with an alert swapped into the alerts
// region instead of the request's own target, so the current results stay
// on screen. Plain requests get the alert inside a full page.
func (h *BaseHandler) RenderAlert(c *gin.Context, status int, props alert.Props) {
	if middleware.IsHTMX(c) {
		c.Header("HX-Retarget", "#"+layout.AlertsID)
		c.Header("HX-Reswap", "innerHTML")
		// htmx ignores error responses unless told otherwise; 200 keeps the swap.
		h.Render(c, http.StatusOK, alert.Alert(props))
		return
	}
	h.Render(c, status, layout.Page(h.NewLayoutData("Error - S.U.P.R.A.", "", alert.Alert(props))))
}
