package models

import (
	"encoding/json"
)

// Restaurant is a venue record. Some backend flows embed its dishes.
type Restaurant struct {
	ID           FlexString `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Latitude     FlexString `json:"latitude"`
	Longitude    FlexString `json:"longitude"`
	WorkingHours string     `json:"workingHours"`
	Phone        string     `json:"phone"`
	PriceRange   int        `json:"priceRange"`
	Atmosphere   []string   `json:"atmosphere"`
	Dishes       []Dish     `json:"dishes,omitempty"`
}

// UnmarshalJSON accepts the snake_case spellings some endpoints use.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	type Alias Restaurant
	aux := &struct {
		WorkingHoursSnake string `json:"working_hours"`
		PriceRangeSnake   int    `json:"price_range"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if r.WorkingHours == "" {
		r.WorkingHours = aux.WorkingHoursSnake
	}
	if r.PriceRange == 0 {
		r.PriceRange = aux.PriceRangeSnake
	}
	return nil
}

// Coordinates returns the parsed latitude and longitude. ok is false when
// either value is missing or not numeric.
func (r Restaurant) Coordinates() (lat, lng float64, ok bool) {
	lat, okLat := r.Latitude.Float()
	lng, okLng := r.Longitude.Float()
	return lat, lng, okLat && okLng
}
