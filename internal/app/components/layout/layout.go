package layout

import "github.com/FACorreiaa/go-supra/internal/app/components/ui"

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// AlertsID is the region search failures are swapped into.
const AlertsID = "alerts"

const navClass = "text-gray-600 hover:text-primary"

func navItemClass(active bool) string {
	if active {
		return ui.Classes(navClass, "text-primary font-semibold")
	}
	return navClass
}
