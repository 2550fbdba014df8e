package models

import "fmt"

// ViewMode selects how the filtered dish list is rendered.
type ViewMode string

const (
	ViewCards ViewMode = "cards"
	ViewMap   ViewMode = "map"
)

// ParseViewMode validates a user-supplied view mode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewCards, ViewMap:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown view mode %q", ErrBadRequest, s)
	}
}

// RecommendationTab is the selected entry of the recommendations strip.
type RecommendationTab string

const (
	TabBest    RecommendationTab = "best"
	TabNearest RecommendationTab = "nearest"
	TabExplore RecommendationTab = "explore"
)

// ParseRecommendationTab falls back to TabBest for unknown values.
func ParseRecommendationTab(s string) RecommendationTab {
	switch RecommendationTab(s) {
	case TabNearest, TabExplore:
		return RecommendationTab(s)
	default:
		return TabBest
	}
}
