package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-supra/internal/pkg/cache"
	"github.com/FACorreiaa/go-supra/internal/pkg/config"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Upload is an image attached to a search submission.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SearchRequest is one multipart search submission. At least one of Query and
// Image must be set.
type SearchRequest struct {
	Query string
	Image *Upload
}

func (r SearchRequest) Empty() bool {
	return strings.TrimSpace(r.Query) == "" && (r.Image == nil || len(r.Image.Data) == 0)
}

// Client talks to the dish/restaurant REST backend. It sends no
// authentication and expects JSON bodies.
type Client struct {
	baseURL     string
	http        *http.Client
	restaurants *cache.UnifiedCache[models.Restaurant]
	logger      *zap.Logger
}

func NewClient(cfg config.BackendConfig, caches *cache.CacheManager, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if caches == nil {
		caches = cache.NewCacheManager(cfg.RestaurantCacheTTL, logger)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		restaurants: caches.Restaurants,
		logger:      logger,
	}
}

// ListDishes fetches the full dish collection.
func (c *Client) ListDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := c.getJSON(ctx, "/dishes", &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// ListRestaurants fetches all restaurants, each optionally embedding dishes.
func (c *Client) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.getJSON(ctx, "/restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant fetches a single restaurant. Successful lookups are cached.
func (c *Client) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	if id == "" {
		return models.Restaurant{}, fmt.Errorf("%w: empty restaurant id", models.ErrBadRequest)
	}
	if r, ok := c.restaurants.Get(id); ok {
		return r, nil
	}

	var r models.Restaurant
	if err := c.getJSON(ctx, "/restaurants/"+url.PathEscape(id), &r); err != nil {
		return models.Restaurant{}, err
	}
	c.restaurants.Set(id, r)
	return r, nil
}

// SearchDishes posts a text and/or image query to the dish search endpoint.
func (c *Client) SearchDishes(ctx context.Context, req SearchRequest) ([]models.Dish, error) {
	if req.Empty() {
		return nil, models.ErrEmptySearch
	}
	var dishes []models.Dish
	if err := c.postMultipart(ctx, "/dishes/search", "searchQuery", "file", req, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// SearchRestaurantsAI posts a text and/or image query to the AI restaurant
// search endpoint. Results embed their matching dishes.
func (c *Client) SearchRestaurantsAI(ctx context.Context, req SearchRequest) ([]models.Restaurant, error) {
	if req.Empty() {
		return nil, models.ErrEmptySearch
	}
	var restaurants []models.Restaurant
	if err := c.postMultipart(ctx, "/restaurants/search-ai", "text", "image", req, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, path, out)
}

func (c *Client) postMultipart(ctx context.Context, path, textField, fileField string, sr SearchRequest, out any) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if strings.TrimSpace(sr.Query) != "" {
		if err := w.WriteField(textField, sr.Query); err != nil {
			return fmt.Errorf("write %s field: %w", textField, err)
		}
	}
	if sr.Image != nil && len(sr.Image.Data) > 0 {
		part, err := w.CreatePart(filePartHeader(fileField, sr.Image))
		if err != nil {
			return fmt.Errorf("create %s part: %w", fileField, err)
		}
		if _, err := part.Write(sr.Image.Data); err != nil {
			return fmt.Errorf("write %s part: %w", fileField, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return c.do(req, path, out)
}

func filePartHeader(field string, img *Upload) textproto.MIMEHeader {
	name := img.Filename
	if name == "" {
		name = "upload"
	}
	contentType := img.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(img.Data)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)
	return h
}

func (c *Client) do(req *http.Request, path string, out any) error {
	start := time.Now()
	attrs := metric.WithAttributes(
		attribute.String("method", req.Method),
		attribute.String("endpoint", endpointLabel(path)),
	)
	m := metrics.Get()
	defer func() {
		m.BackendRequestDuration.Record(req.Context(), time.Since(start).Seconds(), attrs)
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		m.BackendErrorsTotal.Add(req.Context(), 1, attrs)
		c.logger.Error("Backend request failed",
			zap.String("method", req.Method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.BackendErrorsTotal.Add(req.Context(), 1, attrs)
		apiErr := &APIError{Status: resp.StatusCode, Path: path, Message: errorMessage(resp)}
		c.logger.Warn("Backend returned non-2xx",
			zap.String("method", req.Method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		m.BackendErrorsTotal.Add(req.Context(), 1, attrs)
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	c.logger.Debug("Backend request completed",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// errorMessage extracts "message" or "error" from a JSON error body and falls
// back to the status text.
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, v := range []any{body.Message, body.Error} {
			switch msg := v.(type) {
			case string:
				if msg != "" {
					return msg
				}
			case []any:
				parts := make([]string, 0, len(msg))
				for _, p := range msg {
					parts = append(parts, fmt.Sprint(p))
				}
				if len(parts) > 0 {
					return strings.Join(parts, "; ")
				}
			}
		}
	}
	return http.StatusText(resp.StatusCode)
}

// endpointLabel keeps metric cardinality bounded by collapsing ids.
func endpointLabel(path string) string {
	if strings.HasPrefix(path, "/restaurants/") && path != "/restaurants/search-ai" {
		return "/restaurants/{id}"
	}
	return path
}
