package mapview

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func dishes(n int) []models.Dish {
	out := make([]models.Dish, n)
	for i := range out {
		out[i] = models.Dish{
			ID:           models.FlexString(fmt.Sprintf("dish_%d", i)),
			Name:         fmt.Sprintf("dish %d", i),
			RestaurantID: models.FlexString(fmt.Sprintf("rest_%03d", i)),
			Price:        8.5,
		}
	}
	return out
}

func renderMap(t *testing.T, list []models.Dish) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, MapView(list).Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestMapView_SidePanelShowsAtMostThree(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		t.Run(fmt.Sprintf("%d dishes", n), func(t *testing.T) {
			doc := renderMap(t, dishes(n))
			assert.Equal(t, min(SidePanelLimit, n), doc.Find(".side-panel li").Length())
		})
	}
}

func TestMapView_PanelEntries(t *testing.T) {
	doc := renderMap(t, dishes(5))

	first := doc.Find(".side-panel li").First()
	assert.Equal(t, "dish_0", first.AttrOr("data-dish-id", ""))
	assert.Equal(t, "Restaurant #000", first.Find(".panel-restaurant").Text())
	assert.Equal(t, "₾8.50", first.Find(".panel-price").Text())
	assert.Contains(t, doc.Text(), "Interactive Map Coming Soon")
}

func TestMapView_ViewportFromCoordinates(t *testing.T) {
	list := dishes(2)
	list[0].Restaurant = &models.Restaurant{ID: "1", Latitude: "41.70", Longitude: "44.80"}
	list[1].Restaurant = &models.Restaurant{ID: "2", Latitude: "41.72", Longitude: "44.78"}

	doc := renderMap(t, list)
	canvas := doc.Find(".map-canvas")
	assert.Equal(t, "41.710000,44.790000", canvas.AttrOr("data-center", ""))
	assert.Equal(t, "41.700000,44.780000,41.720000,44.800000", canvas.AttrOr("data-bounds", ""))
	assert.Equal(t, 2, doc.Find(".map-pin").Length())
}

func TestMapView_FallsBackToTbilisi(t *testing.T) {
	doc := renderMap(t, dishes(1))
	canvas := doc.Find(".map-canvas")
	_, hasBounds := canvas.Attr("data-bounds")
	assert.False(t, hasBounds)
	assert.Equal(t, "41.716700,44.783300", canvas.AttrOr("data-center", ""))
}
