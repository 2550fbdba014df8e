package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString holds a backend value that arrives either as a JSON string or as
// a JSON number (ids, coordinates). It always keeps the string form.
type FlexString string

// UnmarshalJSON accepts strings, numbers and null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Float parses the value as a float64. Empty or malformed values report false.
func (f FlexString) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Dish is a menu item owned by a restaurant.
type Dish struct {
	ID           FlexString  `json:"id"`
	RestaurantID FlexString  `json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ImageURL     string      `json:"image_url"`
	Ingredients  []string    `json:"ingredients"`
	Tags         []string    `json:"tags"`
	Allergens    []string    `json:"allergens"`

	// Display fields filled by the fetch boundary, never sent by the backend.
	RestaurantName string `json:"-"`
	PriceRange     int    `json:"-"`
}

// UnmarshalJSON implements custom JSON unmarshaling for Dish to accept both
// snake_case and camelCase spellings of restaurant id and image url.
func (d *Dish) UnmarshalJSON(data []byte) error {
	type Alias Dish
	aux := &struct {
		RestaurantIDSnake FlexString `json:"restaurant_id"`
		ImageURLCamel     string     `json:"imageUrl"`
		*Alias
	}{
		Alias: (*Alias)(d),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if d.RestaurantID == "" {
		d.RestaurantID = aux.RestaurantIDSnake
	}
	if d.ImageURL == "" {
		d.ImageURL = aux.ImageURLCamel
	}
	return nil
}

// RestaurantLabel is the fallback label for a dish whose restaurant could not
// be resolved, e.g. "Restaurant #001" for "rest_001".
func (d Dish) RestaurantLabel() string {
	id := strings.TrimPrefix(d.RestaurantID.String(), "rest_")
	if id == "" {
		return "Unknown restaurant"
	}
	return "Restaurant #" + id
}

// DisplayRestaurant returns the resolved restaurant name or the raw label.
func (d Dish) DisplayRestaurant() string {
	if d.RestaurantName != "" {
		return d.RestaurantName
	}
	return d.RestaurantLabel()
}
