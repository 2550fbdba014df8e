package mapview

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/pkg/geo"
)

// SidePanelLimit is how many dishes the restaurant panel lists.
const SidePanelLimit = 3

// Tbilisi is where the map centres when no restaurant has coordinates.
var Tbilisi = orb.Point{44.7833, 41.7167}

// PanelDishes returns the first SidePanelLimit dishes.
func PanelDishes(dishes []models.Dish) []models.Dish {
	if len(dishes) > SidePanelLimit {
		return dishes[:SidePanelLimit]
	}
	return dishes
}

// viewport is what the map shows for a result set: one pin per distinct
// restaurant, centred on them.
type viewport struct {
	points    []orb.Point
	center    orb.Point
	bounds    orb.Bound
	hasBounds bool
}

func newViewport(dishes []models.Dish) viewport {
	points := geo.RestaurantPoints(dishes)
	vp := viewport{
		points: points,
		center: geo.CenterPoint(points, Tbilisi),
	}
	vp.bounds, vp.hasBounds = geo.Bounds(points)
	return vp
}

func (vp viewport) centerAttr() string {
	return fmt.Sprintf("%f,%f", vp.center.Lat(), vp.center.Lon())
}

func (vp viewport) boundsAttr() string {
	b := vp.bounds
	return fmt.Sprintf("%f,%f,%f,%f", b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
}

func (vp viewport) label() string {
	return geo.FormatCoordinatesDisplay(vp.center)
}

func pinClass(i int) string {
	return fmt.Sprintf("map-pin pin-%d", i%3)
}

func panelPrice(p float64) string {
	return fmt.Sprintf("₾%.2f", p)
}
