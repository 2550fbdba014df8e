package backend

import (
	"context"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// Fetcher is the data-fetch boundary: every list it returns is normalized.
type Fetcher struct {
	client     *Client
	normalizer *Normalizer
}

func NewFetcher(client *Client, maxLookups int, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:     client,
		normalizer: NewNormalizer(client, maxLookups, logger),
	}
}

func (f *Fetcher) Dishes(ctx context.Context) ([]models.Dish, error) {
	dishes, err := f.client.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	return f.normalizer.Dishes(ctx, dishes), nil
}

func (f *Fetcher) SearchDishes(ctx context.Context, req SearchRequest) ([]models.Dish, error) {
	dishes, err := f.client.SearchDishes(ctx, req)
	if err != nil {
		return nil, err
	}
	return f.normalizer.Dishes(ctx, dishes), nil
}

func (f *Fetcher) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := f.client.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return f.normalizer.Restaurants(restaurants), nil
}

func (f *Fetcher) SearchRestaurants(ctx context.Context, req SearchRequest) ([]models.Restaurant, error) {
	restaurants, err := f.client.SearchRestaurantsAI(ctx, req)
	if err != nil {
		return nil, err
	}
	return f.normalizer.Restaurants(restaurants), nil
}
