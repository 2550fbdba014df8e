package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable wraps transport failures: DNS, refused connections, timeouts.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is returned for any non-2xx backend response.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s returned %d: %s", e.Path, e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
