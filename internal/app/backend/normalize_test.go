package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func TestNormalizer_Dishes(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("GetRestaurant", mock.Anything, "rest_001").
		Return(models.Restaurant{ID: "rest_001", Name: "Sakhli", PriceRange: 3}, nil).Once()
	resolver.On("GetRestaurant", mock.Anything, "rest_404").
		Return(models.Restaurant{}, errors.New("not found")).Once()

	n := NewNormalizer(resolver, 4, nil)
	in := []models.Dish{
		{ID: "1", RestaurantID: "rest_001", Name: "ხინკალი"},
		{ID: "2", Restaurant: &models.Restaurant{ID: "r2", Name: "Pasanauri", PriceRange: 1}, Name: "მწვადი"},
		{ID: "3", RestaurantID: "rest_404", Name: "ლობიო"},
		{ID: "4", RestaurantID: "rest_001", Name: "ჩაქაფული", Ingredients: []string{"ტარხუნა"}},
	}

	out := n.Dishes(context.Background(), in)
	require.Len(t, out, 4)

	assert.Equal(t, "Sakhli", out[0].RestaurantName)
	assert.Equal(t, 3, out[0].PriceRange)
	require.NotNil(t, out[0].Restaurant)
	assert.Equal(t, "Sakhli", out[0].Restaurant.Name)
	assert.Nil(t, out[2].Restaurant)
	assert.Equal(t, "Pasanauri", out[1].RestaurantName)
	assert.Equal(t, models.FlexString("r2"), out[1].RestaurantID)
	assert.Equal(t, "", out[2].RestaurantName)
	assert.Equal(t, "Restaurant #404", out[2].DisplayRestaurant())
	assert.Equal(t, "Sakhli", out[3].RestaurantName)

	for _, d := range out {
		assert.NotNil(t, d.Ingredients)
		assert.NotNil(t, d.Tags)
		assert.NotNil(t, d.Allergens)
	}
	assert.Equal(t, []string{"ტარხუნა"}, out[3].Ingredients)
	assert.Nil(t, in[0].Ingredients, "input is not mutated")

	resolver.AssertExpectations(t)
}

func TestNormalizer_LookupFailureLogLevel(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("GetRestaurant", mock.Anything, "rest_gone").
		Return(models.Restaurant{}, &APIError{Status: 404, Path: "/restaurants/rest_gone", Message: "Not Found"})
	resolver.On("GetRestaurant", mock.Anything, "rest_down").
		Return(models.Restaurant{}, ErrUnavailable)

	core, logs := observer.New(zapcore.DebugLevel)
	n := NewNormalizer(resolver, 2, zap.New(core))
	n.Dishes(context.Background(), []models.Dish{
		{ID: "1", RestaurantID: "rest_gone"},
		{ID: "2", RestaurantID: "rest_down"},
	})

	gone := logs.FilterField(zap.String("restaurantId", "rest_gone")).All()
	require.Len(t, gone, 1)
	assert.Equal(t, zapcore.DebugLevel, gone[0].Level)

	down := logs.FilterField(zap.String("restaurantId", "rest_down")).All()
	require.Len(t, down, 1)
	assert.Equal(t, zapcore.WarnLevel, down[0].Level)
}

func TestNormalizer_RestaurantsAndFlatten(t *testing.T) {
	n := NewNormalizer(nil, 1, nil)
	restaurants := n.Restaurants([]models.Restaurant{
		{ID: "1", Name: "Sakhli", PriceRange: 2, Dishes: []models.Dish{{ID: "a", Name: "ხინკალი"}, {ID: "b", Name: "ხაჭაპური"}}},
		{ID: "2", Name: "Empty"},
		{ID: "3", Name: "Shavi Lomi", PriceRange: 4, Dishes: []models.Dish{{ID: "c", Name: "ჩაშუშული"}}},
	})

	assert.NotNil(t, restaurants[1].Atmosphere)

	dishes := FlattenDishes(restaurants)
	require.Len(t, dishes, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{dishes[0].ID.String(), dishes[1].ID.String(), dishes[2].ID.String()})
	assert.Equal(t, "Sakhli", dishes[0].RestaurantName)
	assert.Equal(t, models.FlexString("1"), dishes[0].RestaurantID)
	assert.Equal(t, 4, dishes[2].PriceRange)
	assert.NotNil(t, dishes[2].Allergens)

	assert.Equal(t, []models.Dish{}, FlattenDishes(nil))
}
