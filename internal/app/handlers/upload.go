package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
)

// MaxUploadBytes caps the body of search forms carrying an image.
const MaxUploadBytes = 10 << 20

// ReadUpload returns the image posted in field, or nil when the field is
// missing or empty.
func ReadUpload(c *gin.Context, field string) (*backend.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &backend.Upload{Filename: fh.Filename, ContentType: contentType, Data: data}, nil
}

// LimitBody caps the request body at MaxUploadBytes.
func LimitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)
}
