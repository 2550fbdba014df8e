package tabs

import (
	"strconv"

	"github.com/FACorreiaa/go-supra/internal/app/components/ui"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

const ID = "recommendation-tabs"

type Tab struct {
	ID          models.RecommendationTab
	Label       string
	Description string
}

var Tabs = []Tab{
	{models.TabBest, "Best Option", "Top-rated dishes based on quality and reviews"},
	{models.TabNearest, "Nearest Best", "Great dishes closest to your location"},
	{models.TabExplore, "Best to Explore", "Hidden gems and unique dining experiences"},
}

const tabClass = "p-6 rounded-xl border-2 transition-all text-left border-gray-200 hover:border-primary/30 hover:bg-gray-50"

func (t Tab) href() string {
	return "/recommendations?tab=" + string(t.ID)
}

func (t Tab) selected(active models.RecommendationTab) string {
	return strconv.FormatBool(t.ID == active)
}

func (t Tab) class(active models.RecommendationTab) string {
	if t.ID == active {
		return ui.Classes(tabClass, "border-primary bg-primary/5 shadow-md hover:border-primary hover:bg-primary/5")
	}
	return tabClass
}
