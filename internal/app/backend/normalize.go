package backend

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// RestaurantResolver looks up a restaurant by id.
type RestaurantResolver interface {
	GetRestaurant(ctx context.Context, id string) (models.Restaurant, error)
}

// Normalizer turns every backend payload shape into display-ready dishes:
// list fields are never nil and RestaurantName/PriceRange are always set,
// whether the restaurant was embedded, the dishes were embedded in their
// restaurant, or only restaurantId was sent.
type Normalizer struct {
	resolver   RestaurantResolver
	maxLookups int
	logger     *zap.Logger
}

func NewNormalizer(resolver RestaurantResolver, maxLookups int, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLookups <= 0 {
		maxLookups = 1
	}
	return &Normalizer{resolver: resolver, maxLookups: maxLookups, logger: logger}
}

// FillLists replaces missing ingredient, tag and allergen lists with empty ones.
func FillLists(d *models.Dish) {
	if d.Ingredients == nil {
		d.Ingredients = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Allergens == nil {
		d.Allergens = []string{}
	}
}

func applyRestaurant(d *models.Dish, r models.Restaurant) {
	r.Dishes = nil
	d.Restaurant = &r
	d.RestaurantName = r.Name
	d.PriceRange = r.PriceRange
	if d.RestaurantID == "" {
		d.RestaurantID = r.ID
	}
}

// Dishes normalizes a flat dish list. Restaurants referenced only by id are
// resolved concurrently; a failed lookup leaves the raw id label in place.
func (n *Normalizer) Dishes(ctx context.Context, dishes []models.Dish) []models.Dish {
	out := make([]models.Dish, len(dishes))
	pending := make(map[string][]int)

	for i, d := range dishes {
		FillLists(&d)
		switch {
		case d.Restaurant != nil:
			applyRestaurant(&d, *d.Restaurant)
		case d.RestaurantID != "":
			pending[d.RestaurantID.String()] = append(pending[d.RestaurantID.String()], i)
		}
		out[i] = d
	}

	if len(pending) == 0 || n.resolver == nil {
		return out
	}

	var mu sync.Mutex
	resolved := make(map[string]models.Restaurant, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.maxLookups)
	for id := range pending {
		g.Go(func() error {
			r, err := n.resolver.GetRestaurant(gctx, id)
			if err != nil {
				log := n.logger.Warn
				if IsNotFound(err) {
					// dangling ids are data problems, not outages
					log = n.logger.Debug
				}
				log("Could not resolve restaurant for dishes, using raw label",
					zap.String("restaurantId", id),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			resolved[id] = r
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for id, idxs := range pending {
		r, ok := resolved[id]
		if !ok {
			continue
		}
		for _, i := range idxs {
			applyRestaurant(&out[i], r)
		}
	}
	return out
}

// Restaurants normalizes restaurants and the dishes they embed.
func (n *Normalizer) Restaurants(restaurants []models.Restaurant) []models.Restaurant {
	out := make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		if r.Atmosphere == nil {
			r.Atmosphere = []string{}
		}
		dishes := make([]models.Dish, len(r.Dishes))
		for j, d := range r.Dishes {
			FillLists(&d)
			applyRestaurant(&d, r)
			dishes[j] = d
		}
		r.Dishes = dishes
		out[i] = r
	}
	return out
}

// FlattenDishes lists the dishes of normalized restaurants in restaurant order.
func FlattenDishes(restaurants []models.Restaurant) []models.Dish {
	var dishes []models.Dish
	for _, r := range restaurants {
		dishes = append(dishes, r.Dishes...)
	}
	if dishes == nil {
		dishes = []models.Dish{}
	}
	return dishes
}
