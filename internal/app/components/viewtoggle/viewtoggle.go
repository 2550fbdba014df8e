package viewtoggle

import (
	"strconv"

	"github.com/FACorreiaa/go-supra/internal/app/components/ui"
	"github.com/FACorreiaa/go-supra/internal/app/models"
)

type option struct {
	mode  models.ViewMode
	label string
}

var options = []option{
	{models.ViewCards, "Dish Cards"},
	{models.ViewMap, "Map View"},
}

const (
	baseClass     = "px-6 py-2 rounded-md transition-all"
	activeClass   = "bg-primary text-primary-foreground shadow-sm"
	inactiveClass = "text-muted-foreground hover:text-foreground"
)

func (o option) post() string {
	return "/view?mode=" + string(o.mode)
}

func (o option) pressed(active models.ViewMode) string {
	return strconv.FormatBool(o.mode == active)
}

func (o option) class(active models.ViewMode) string {
	if o.mode == active {
		return ui.Classes(baseClass, activeClass)
	}
	return ui.Classes(baseClass, inactiveClass)
}
