package restaurants

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/handlers"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockFetcher) SearchRestaurants(ctx context.Context, req backend.SearchRequest) ([]models.Restaurant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "1", Name: "Sakhli", PriceRange: 2, Dishes: []models.Dish{
			{ID: "a", Name: "ხინკალი", RestaurantName: "Sakhli"},
			{ID: "b", Name: "ხაჭაპური", RestaurantName: "Sakhli"},
		}},
		{ID: "2", Name: "Shavi Lomi", PriceRange: 4},
	}
}

func setupRouter(fetcher Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	h := NewHandler(handlers.NewBaseHandler(logger), NewService(fetcher, logger), logger)

	r := gin.New()
	r.GET("/restaurants", h.ShowPage)
	r.POST("/restaurants/search-ai", h.Search)
	return r
}

func do(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func searchRequest(t *testing.T, text string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", text))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/restaurants/search-ai", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 dishes across 2 restaurants", Summary(sampleRestaurants()))
	assert.Equal(t, "0 dishes across 0 restaurants", Summary(nil))
	assert.Equal(t, "1 dish across 1 restaurant", Summary([]models.Restaurant{{Dishes: []models.Dish{{}}}}))
}

func TestHandler_ShowPage(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Restaurants", mock.Anything).Return(sampleRestaurants(), nil)

	w, doc := do(t, setupRouter(fetcher), httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, doc.Find(".restaurant-card").Length())
	assert.Equal(t, 2, doc.Find(".restaurant-card .dish-card").Length())
	assert.Equal(t, "page", doc.Find(`nav a[href="/restaurants"]`).AttrOr("aria-current", ""))
}

func TestHandler_ShowPageWhenBackendFails(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Restaurants", mock.Anything).Return(nil, backend.ErrUnavailable)

	w, doc := do(t, setupRouter(fetcher), httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, doc.Find(".restaurant-card").Length())
	assert.Contains(t, doc.Find(".empty-state").Text(), "could not be loaded")
}

func TestHandler_Search(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("SearchRestaurants", mock.Anything, backend.SearchRequest{Query: "cozy wine bar"}).
		Return(sampleRestaurants()[1:], nil)

	w, doc := do(t, setupRouter(fetcher), searchRequest(t, "cozy wine bar"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, doc.Find("#"+ResultsID).Length())
	assert.Equal(t, "Shavi Lomi", doc.Find(".restaurant-name").Text())
	fetcher.AssertExpectations(t)
}

func TestHandler_SearchFailure(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("SearchRestaurants", mock.Anything, mock.Anything).
		Return(nil, &backend.APIError{Status: http.StatusInternalServerError, Message: "model offline"})

	w, doc := do(t, setupRouter(fetcher), searchRequest(t, "khinkali"))

	assert.Equal(t, "#alerts", w.Header().Get("HX-Retarget"))
	assert.Equal(t, "model offline", doc.Find(".alert-detail").Text())
	assert.Equal(t, 0, doc.Find(".restaurant-card").Length())
}

func TestHandler_EmptySearch(t *testing.T) {
	fetcher := new(MockFetcher)
	w, doc := do(t, setupRouter(fetcher), searchRequest(t, " "))

	assert.Equal(t, "#alerts", w.Header().Get("HX-Retarget"))
	assert.Equal(t, "info", doc.Find(".alert").AttrOr("data-variant", ""))
	fetcher.AssertNotCalled(t, "SearchRestaurants", mock.Anything, mock.Anything)
}
