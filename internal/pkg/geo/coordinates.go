package geo

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// ValidateCoordinates checks if latitude and longitude are valid.
// Latitude must be between -90 and 90, longitude between -180 and 180.
// The 0,0 pair usually means the backend had no location and is rejected.
func ValidateCoordinates(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// RestaurantPoints returns one orb.Point (lon, lat) per restaurant with
// usable coordinates. Restaurants shared by several dishes count once.
func RestaurantPoints(dishes []models.Dish) []orb.Point {
	seen := make(map[string]struct{}, len(dishes))
	points := make([]orb.Point, 0, len(dishes))

	for _, d := range dishes {
		if d.Restaurant == nil {
			continue
		}
		lat, lng, ok := d.Restaurant.Coordinates()
		if !ok || !ValidateCoordinates(lat, lng) {
			continue
		}
		key := d.Restaurant.ID.String()
		if key == "" {
			key = fmt.Sprintf("%f,%f", lat, lng)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		points = append(points, orb.Point{lng, lat})
	}
	return points
}

// Bounds returns the bounding box of points. ok is false for no points.
func Bounds(points []orb.Point) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}
	return orb.MultiPoint(points).Bound(), true
}

// CenterPoint returns the centre of the bounding box of points, or fallback
// when there are none.
func CenterPoint(points []orb.Point, fallback orb.Point) orb.Point {
	bound, ok := Bounds(points)
	if !ok {
		return fallback
	}
	return bound.Center()
}

// FormatCoordinatesDisplay formats a point as "lat, lng" with four decimals.
func FormatCoordinatesDisplay(p orb.Point) string {
	if !ValidateCoordinates(p.Lat(), p.Lon()) {
		return "Location TBD"
	}
	return fmt.Sprintf("%.4f, %.4f", p.Lat(), p.Lon())
}
