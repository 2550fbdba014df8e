package dishes

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/app/observability/metrics"
)

// Fetcher is the part of backend.Fetcher the dish page needs.
type Fetcher interface {
	Dishes(ctx context.Context) ([]models.Dish, error)
	SearchDishes(ctx context.Context, req backend.SearchRequest) ([]models.Dish, error)
}

type Service struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func NewService(fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

// Load fetches the canonical list into st. A failure is logged and leaves
// the lists untouched; the page still renders.
func (s *Service) Load(ctx context.Context, st *State) {
	token := st.BeginSearch()

	list, err := s.fetcher.Dishes(ctx)
	if err != nil {
		s.logger.Error("Failed to load dishes", zap.Error(err))
		st.FailLoad(token)
		return
	}

	if !st.ApplyLoad(token, list) {
		s.logger.Debug("Discarding dish list superseded by a newer request", zap.Uint64("token", token))
		return
	}
	s.logger.Debug("Dishes loaded", zap.Int("count", len(list)))
}

// EnsureLoaded runs Load when st has never been loaded, e.g. when a partial
// request arrives for an expired session.
func (s *Service) EnsureLoaded(ctx context.Context, st *State) {
	if !st.Loaded() {
		s.Load(ctx, st)
	}
}

// Filter applies a local text query. It never calls the backend.
func (s *Service) Filter(ctx context.Context, st *State, query string) Snapshot {
	metrics.Get().SearchRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", "text")))
	st.SetQuery(query)
	return st.Snapshot()
}

// Search delegates matching to the backend. applied is false when a newer
// search was issued before this one returned; the state is unchanged then.
// On error the state is unchanged as well.
func (s *Service) Search(ctx context.Context, st *State, req backend.SearchRequest) (snap Snapshot, applied bool, err error) {
	if req.Empty() {
		return st.Snapshot(), false, models.ErrEmptySearch
	}

	mode := "ai"
	if req.Image != nil {
		mode = "image"
	}
	m := metrics.Get()
	m.SearchRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))

	token := st.BeginSearch()
	list, err := s.fetcher.SearchDishes(ctx, req)
	if err != nil {
		s.logger.Warn("Dish search failed",
			zap.String("query", req.Query),
			zap.Bool("image", req.Image != nil),
			zap.Error(err))
		return st.Snapshot(), false, fmt.Errorf("dish search: %w", err)
	}

	if !st.ApplySearch(token, req.Query, list) {
		m.StaleSearchResults.Add(ctx, 1)
		s.logger.Info("Discarding stale search response",
			zap.Uint64("token", token),
			zap.String("query", req.Query))
		return st.Snapshot(), false, nil
	}

	s.logger.Info("Dish search applied",
		zap.String("query", req.Query),
		zap.Int("results", len(list)))
	return st.Snapshot(), true, nil
}

// SetView changes the presentation only.
func (s *Service) SetView(st *State, raw string) (Snapshot, error) {
	view, err := models.ParseViewMode(raw)
	if err != nil {
		return st.Snapshot(), err
	}
	st.SetView(view)
	return st.Snapshot(), nil
}
