package dishes

import (
	"github.com/FACorreiaa/go-supra/internal/app/components/dishgrid"
	"github.com/FACorreiaa/go-supra/internal/app/components/searchbar"
)

// ResultsID is the element every dish partial replaces.
const ResultsID = "results"

const resultsTarget = "#" + ResultsID

func searchProps(query string, suggestions []string) searchbar.Props {
	return searchbar.Props{
		Query:       query,
		Suggestions: suggestions,
		Target:      resultsTarget,
	}
}

func (s Snapshot) gridProps() dishgrid.Props {
	return dishgrid.Props{
		Query:      s.Heading(),
		Dishes:     s.Dishes,
		LoadFailed: s.LoadFailed,
	}
}
