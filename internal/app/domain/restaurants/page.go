package restaurants

import (
	"fmt"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

const ResultsID = "restaurant-results"

const resultsTarget = "#" + ResultsID

// Summary is the line above the list, e.g. "5 dishes across 2 restaurants".
func Summary(list []models.Restaurant) string {
	dishes := len(backend.FlattenDishes(list))
	return fmt.Sprintf("%d %s across %d %s",
		dishes, plural(dishes, "dish", "dishes"),
		len(list), plural(len(list), "restaurant", "restaurants"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
