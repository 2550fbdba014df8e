package dishgrid

import "github.com/FACorreiaa/go-supra/internal/app/models"

const (
	FeaturedHeading = "Featured Dishes"
	EmptyMessage    = "No dishes found matching your search."
	EmptyHint       = `Try searching for "ხინკალი" or "ხაჭაპური"`
	LoadFailedHint  = "The dish list could not be loaded. Refresh the page to try again."
)

type Props struct {
	// Query is the text shown in the heading; empty means the featured list.
	Query      string
	Dishes     []models.Dish
	LoadFailed bool
}

// Heading returns `Results for "q"` or the featured heading.
func Heading(query string) string {
	if query == "" {
		return FeaturedHeading
	}
	return `Results for "` + query + `"`
}
