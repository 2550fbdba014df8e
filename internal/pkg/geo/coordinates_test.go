package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func dishAt(restID, lat, lng string) models.Dish {
	return models.Dish{
		RestaurantID: models.FlexString(restID),
		Restaurant: &models.Restaurant{
			ID:        models.FlexString(restID),
			Latitude:  models.FlexString(lat),
			Longitude: models.FlexString(lng),
		},
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(41.7151, 44.8271))
	assert.False(t, ValidateCoordinates(0, 0))
	assert.False(t, ValidateCoordinates(91, 10))
	assert.False(t, ValidateCoordinates(10, -181))
}

func TestRestaurantPoints(t *testing.T) {
	dishes := []models.Dish{
		dishAt("rest_001", "41.70", "44.80"),
		dishAt("rest_001", "41.70", "44.80"),
		dishAt("rest_002", "41.72", "44.78"),
		dishAt("rest_003", "", "44.78"),
		{RestaurantID: "rest_004"},
	}

	points := RestaurantPoints(dishes)
	require.Len(t, points, 2)
	assert.Equal(t, orb.Point{44.80, 41.70}, points[0])
}

func TestBoundsAndCenter(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	fallback := orb.Point{44.7833, 41.7167}
	assert.Equal(t, fallback, CenterPoint(nil, fallback))

	points := []orb.Point{{44.80, 41.70}, {44.78, 41.72}}
	bound, ok := Bounds(points)
	require.True(t, ok)
	assert.InDelta(t, 41.70, bound.Min.Lat(), 1e-9)
	assert.InDelta(t, 44.80, bound.Max.Lon(), 1e-9)

	center := CenterPoint(points, fallback)
	assert.InDelta(t, 41.71, center.Lat(), 1e-9)
	assert.InDelta(t, 44.79, center.Lon(), 1e-9)
}

func TestFormatCoordinatesDisplay(t *testing.T) {
	assert.Equal(t, "41.7151, 44.8271", FormatCoordinatesDisplay(orb.Point{44.8271, 41.7151}))
	assert.Equal(t, "Location TBD", FormatCoordinatesDisplay(orb.Point{}))
}
