package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/pkg/config"
)

type stubFetcher struct {
	dishes      []models.Dish
	restaurants []models.Restaurant
}

func (f *stubFetcher) Dishes(context.Context) ([]models.Dish, error) {
	return append([]models.Dish(nil), f.dishes...), nil
}

func (f *stubFetcher) SearchDishes(context.Context, backend.SearchRequest) ([]models.Dish, error) {
	return f.dishes[:1], nil
}

func (f *stubFetcher) Restaurants(context.Context) ([]models.Restaurant, error) {
	return f.restaurants, nil
}

func (f *stubFetcher) SearchRestaurants(context.Context, backend.SearchRequest) ([]models.Restaurant, error) {
	return f.restaurants, nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SessionTTL:    time.Minute,
		SessionSecret: "test-secret-test-secret-test-sec",
		Suggestions:   config.DefaultSuggestions,
	}
	fetcher := &stubFetcher{
		dishes: []models.Dish{
			{ID: "dish_001", Name: "ხინკალი", Description: "ტრადიციული", Ingredients: []string{"ხორცი"}},
			{ID: "dish_002", Name: "ხაჭაპური", Description: "ყველით", Ingredients: []string{"ყველი"}},
		},
		restaurants: []models.Restaurant{{ID: "rest_001", Name: "Sakhli"}},
	}

	deps := NewDependenciesWith(cfg, fetcher, nil, zap.NewNop())
	r := gin.New()
	Setup(r, deps, zap.NewNop())
	return r, deps
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cardIDs(t *testing.T, body string) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	var out []string
	doc.Find(".dish-card").Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.AttrOr("data-dish-id", ""))
	})
	return out
}

func TestSetup_StateFollowsSessionCookie(t *testing.T) {
	r, deps := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"dish_001", "dish_002"}, cardIDs(t, w.Body.String()))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/dishes/filter?q=ყველ", nil)
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"dish_002"}, cardIDs(t, w.Body.String()))

	// A second browser starts from its own, unfiltered state.
	other := httptest.NewRequest(http.MethodGet, "/dishes/filter?q=", nil)
	other.Header.Set("HX-Request", "true")
	w = serve(r, other)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"dish_001", "dish_002"}, cardIDs(t, w.Body.String()))

	assert.Equal(t, 2, deps.Sessions.Len())
}

func TestSetup_Pages(t *testing.T) {
	r, _ := newTestEngine(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"dish page", http.MethodGet, "/", http.StatusOK},
		{"restaurants page", http.MethodGet, "/restaurants", http.StatusOK},
		{"recommendations", http.MethodGet, "/recommendations?tab=nearest", http.StatusOK},
		{"dishes alias", http.MethodGet, "/dishes", http.StatusFound},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetup_Healthz(t *testing.T) {
	r, _ := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body["caches"], "restaurants")
}
