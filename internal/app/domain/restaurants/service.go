package restaurants

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

// Fetcher is the part of backend.Fetcher the restaurant page needs.
type Fetcher interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	SearchRestaurants(ctx context.Context, req backend.SearchRequest) ([]models.Restaurant, error)
}

type Service struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func NewService(fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]models.Restaurant, error) {
	list, err := s.fetcher.Restaurants(ctx)
	if err != nil {
		s.logger.Error("Failed to load restaurants", zap.Error(err))
		return []models.Restaurant{}, fmt.Errorf("list restaurants: %w", err)
	}
	return list, nil
}

// Search asks the backend's AI endpoint for restaurants matching text and/or
// an image. The response is used as is.
func (s *Service) Search(ctx context.Context, req backend.SearchRequest) ([]models.Restaurant, error) {
	if req.Empty() {
		return nil, models.ErrEmptySearch
	}
	metrics.Get().SearchRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", "restaurants")))

	list, err := s.fetcher.SearchRestaurants(ctx, req)
	if err != nil {
		s.logger.Warn("Restaurant search failed",
			zap.String("text", req.Query),
			zap.Bool("image", req.Image != nil),
			zap.Error(err))
		return nil, fmt.Errorf("restaurant search: %w", err)
	}
	s.logger.Info("Restaurant search completed", zap.Int("results", len(list)))
	return list, nil
}
