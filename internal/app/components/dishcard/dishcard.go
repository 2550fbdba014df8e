package dishcard

import (
	"strconv"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

const (
	// MaxIngredients is how many ingredient badges a card shows before
	// collapsing the rest into "+N more".
	MaxIngredients = 4
	// PriceTiers is the number of dollar icons in the price row.
	PriceTiers = 4

	dollarIcon         = "/assets/img/dollar.svg"
	disabledDollarIcon = "/assets/img/dollar-disabled.svg"
)

// FormatPrice renders a price the way the menu prints it: "12", "8.5".
func FormatPrice(p float64) string {
	return "₾" + strconv.FormatFloat(p, 'f', -1, 64)
}

// DollarIcons returns the icon for each of the PriceTiers positions.
// Positions below the tier use the disabled variant.
func DollarIcons(tier int) []string {
	icons := make([]string, PriceTiers)
	for i := range icons {
		if i < tier {
			icons[i] = disabledDollarIcon
		} else {
			icons[i] = dollarIcon
		}
	}
	return icons
}

// shownIngredients is the head of the ingredient list that gets badges.
func shownIngredients(d models.Dish) []string {
	if len(d.Ingredients) > MaxIngredients {
		return d.Ingredients[:MaxIngredients]
	}
	return d.Ingredients
}

func hiddenIngredients(d models.Dish) int {
	return max(len(d.Ingredients)-MaxIngredients, 0)
}
