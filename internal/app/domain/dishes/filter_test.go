package dishes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func sampleDishes() []models.Dish {
	return []models.Dish{
		{
			ID:          "dish_001",
			Name:        "ხინკალი ხორცითა და ყველით",
			Description: "ტრადიციული ქართული ხინკალი",
			Ingredients: []string{"ხორცი", "ყველი", "ფქვილი", "ხახვი", "კინძი"},
		},
		{
			ID:          "dish_002",
			Name:        "აჯარული ხაჭაპური",
			Description: "გახსნილი ხაჭაპური ყველით, კვერცხითა და კარაქით",
			Ingredients: []string{"ფქვილი", "ყველი", "კვერცხი", "კარაქი", "რძე"},
		},
		{
			ID:          "dish_003",
			Name:        "Badrijani Nigvzit",
			Description: "Fried EGGPLANT rolls with walnut paste",
			Ingredients: []string{"Eggplant", "Walnut", "Garlic"},
		},
	}
}

func ids(list []models.Dish) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.ID.String())
	}
	return out
}

func TestFilter_BlankQueryKeepsEverything(t *testing.T) {
	list := sampleDishes()
	for _, q := range []string{"", " ", "\t\n"} {
		got := Filter(list, q)
		assert.Equal(t, list, got, "query %q", q)
	}
}

func TestFilter_GeorgianScenario(t *testing.T) {
	list := []models.Dish{
		{ID: "1", Name: "ხინკალი ხორცითა", Ingredients: []string{"ხორცი", "ყველი"}},
		{ID: "2", Name: "ხაჭაპური", Ingredients: []string{"ფქვილი"}},
	}

	assert.Equal(t, []string{"1"}, ids(Filter(list, "ხორც")))

	got := Filter(list, "vegetarian")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_MatchesEachField(t *testing.T) {
	list := sampleDishes()

	assert.Equal(t, []string{"dish_002"}, ids(Filter(list, "აჯარული")), "name")
	assert.Equal(t, []string{"dish_002"}, ids(Filter(list, "გახსნილი")), "description")
	assert.Equal(t, []string{"dish_002"}, ids(Filter(list, "რძე")), "ingredient")
}

func TestFilter_CaseInsensitive(t *testing.T) {
	list := sampleDishes()

	assert.Equal(t, []string{"dish_003"}, ids(Filter(list, "eggplant")))
	assert.Equal(t, []string{"dish_003"}, ids(Filter(list, "WALNUT")))
	assert.Equal(t, []string{"dish_003"}, ids(Filter(list, "bAdRiJaNi")))
}

func TestFilter_PreservesOrderAndSoundness(t *testing.T) {
	list := sampleDishes()
	query := "ყველ"

	got := Filter(list, query)
	assert.Equal(t, []string{"dish_001", "dish_002"}, ids(got))

	// Filtering one dish at a time must agree with filtering the list.
	for _, d := range list {
		kept := len(Filter([]models.Dish{d}, query)) == 1
		if kept {
			assert.Contains(t, ids(got), d.ID.String())
		} else {
			assert.NotContains(t, ids(got), d.ID.String())
		}
	}
}

func TestFilter_UntrimmedQuery(t *testing.T) {
	list := sampleDishes()
	assert.Empty(t, Filter(list, " ხინკალი "))
	assert.Equal(t, []string{"dish_001"}, ids(Filter(list, "ხინკალი ")))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := sampleDishes()
	before := ids(list)

	got := Filter(list, "")
	got[0].Name = "changed"

	assert.Equal(t, before, ids(list))
	assert.Equal(t, "ხინკალი ხორცითა და ყველით", list[0].Name)
}
