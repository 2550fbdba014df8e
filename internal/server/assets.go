package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-supra/assets"
)

// SetupAssets serves the embedded static files under /assets.
func SetupAssets(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(assets.Assets))
}
