package dishes

import (
	"strings"
	"sync"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// State is the per-browser dish page state. All transitions are explicit
// and safe for concurrent use: HTMX may fire several requests at once.
type State struct {
	mu sync.Mutex

	query       string
	searchQuery string
	canonical   []models.Dish
	filtered    []models.Dish
	view        models.ViewMode
	tab         models.RecommendationTab

	issued     uint64
	loaded     bool
	loadFailed bool
}

// Snapshot is an immutable copy of State used for rendering.
type Snapshot struct {
	Query       string
	SearchQuery string
	Dishes      []models.Dish
	Total       int
	View        models.ViewMode
	Tab         models.RecommendationTab
	Loaded      bool
	LoadFailed  bool
}

// Heading returns the label the results heading is built from: the local
// filter query when set, else the query of the last applied AI search.
func (s Snapshot) Heading() string {
	if s.Query != "" {
		return s.Query
	}
	return strings.TrimSpace(s.SearchQuery)
}

func NewState() *State {
	return &State{
		view:      models.ViewCards,
		tab:       models.TabBest,
		canonical: []models.Dish{},
		filtered:  []models.Dish{},
	}
}

// Reset returns the state to its initial values, as on a fresh page mount.
// Tokens keep increasing so responses issued before the reset stay stale.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.query = ""
	s.searchQuery = ""
	s.canonical = []models.Dish{}
	s.filtered = []models.Dish{}
	s.view = models.ViewCards
	s.tab = models.TabBest
	s.loaded = false
	s.loadFailed = false
}

// SetQuery stores the local filter query and re-derives the filtered list.
func (s *State) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	s.filtered = Filter(s.canonical, q)
}

// SetCanonicalList replaces the canonical list and re-applies the current
// query to it.
func (s *State) SetCanonicalList(list []models.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCanonical(list)
}

func (s *State) setCanonical(list []models.Dish) {
	s.canonical = append(make([]models.Dish, 0, len(list)), list...)
	s.filtered = Filter(s.canonical, s.query)
	s.loaded = true
	s.loadFailed = false
}

// SetView switches the presentation. It never touches the lists.
func (s *State) SetView(v models.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = v
}

// SetTab selects a recommendation tab. Presentation only.
func (s *State) SetTab(tab models.RecommendationTab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tab = tab
}

// BeginSearch issues a new request token. Only the latest issued token may
// apply its response.
func (s *State) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// ApplyLoad installs the result of the initial list fetch. It reports false
// and changes nothing when a newer request was issued meanwhile.
func (s *State) ApplyLoad(token uint64, list []models.Dish) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.issued {
		return false
	}
	s.setCanonical(list)
	return true
}

// FailLoad records a failed initial fetch. The lists are left as they were.
func (s *State) FailLoad(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.issued {
		return false
	}
	s.loaded = true
	s.loadFailed = true
	return true
}

// ApplySearch replaces both lists with an AI search response verbatim. The
// local query is cleared since the backend already did the matching.
// Responses carrying a stale token are discarded and reported as false.
func (s *State) ApplySearch(token uint64, query string, list []models.Dish) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.issued {
		return false
	}
	s.canonical = append(make([]models.Dish, 0, len(list)), list...)
	s.filtered = append(make([]models.Dish, 0, len(list)), list...)
	s.query = ""
	s.searchQuery = query
	s.loaded = true
	s.loadFailed = false
	return true
}

// Loaded reports whether an initial fetch has completed, successfully or not.
func (s *State) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Query:       s.query,
		SearchQuery: s.searchQuery,
		Dishes:      append(make([]models.Dish, 0, len(s.filtered)), s.filtered...),
		Total:       len(s.canonical),
		View:        s.view,
		Tab:         s.tab,
		Loaded:      s.loaded,
		LoadFailed:  s.loadFailed,
	}
}
