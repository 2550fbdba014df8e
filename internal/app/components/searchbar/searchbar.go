package searchbar

import "strconv"

const (
	Placeholder = "Search for dishes like 'ხინკალი', 'ხაჭაპური' or 'vegetarian'..."

	InputID = "search-input"
	// SuggestionPrefix starts the id of every suggestion chip, which htmx
	// sends back in the HX-Trigger header.
	SuggestionPrefix = "suggestion-"
)

type Props struct {
	Query       string
	Suggestions []string
	// Target is the css selector search responses are swapped into.
	Target string
}

func chipID(i int) string {
	return SuggestionPrefix + strconv.Itoa(i)
}
