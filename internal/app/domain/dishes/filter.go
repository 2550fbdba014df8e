package dishes

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// Filter returns the dishes whose name, description or any ingredient
// contains query, compared with Unicode case folding. A blank query keeps
// every dish. Order is preserved and the input slice is never modified.
func Filter(list []models.Dish, query string) []models.Dish {
	out := make([]models.Dish, 0, len(list))
	if strings.TrimSpace(query) == "" {
		return append(out, list...)
	}

	// cases.Caser keeps internal state, one per call.
	fold := cases.Fold()
	needle := fold.String(query)

	for _, d := range list {
		if matches(fold, d, needle) {
			out = append(out, d)
		}
	}
	return out
}

func matches(fold cases.Caser, d models.Dish, needle string) bool {
	if strings.Contains(fold.String(d.Name), needle) {
		return true
	}
	if strings.Contains(fold.String(d.Description), needle) {
		return true
	}
	for _, ing := range d.Ingredients {
		if strings.Contains(fold.String(ing), needle) {
			return true
		}
	}
	return false
}
