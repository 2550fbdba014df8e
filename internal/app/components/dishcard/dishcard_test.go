package dishcard

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func renderCard(t *testing.T, d models.Dish) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, DishCard(d).Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestDishCard(t *testing.T) {
	d := models.Dish{
		ID:             "dish_001",
		RestaurantID:   "rest_001",
		Name:           "ხინკალი ხორცითა და ყველით",
		Description:    "ტრადიციული ქართული ხინკალი",
		Price:          12,
		ImageURL:       "https://images.example.com/khinkali.jpg",
		Ingredients:    []string{"ხორცი", "ყველი", "ფქვილი", "ხახვი", "კინძი"},
		Allergens:      []string{"ფქვილი", "რძის პროდუქტები"},
		RestaurantName: "Sakhli",
		PriceRange:     2,
	}

	doc := renderCard(t, d)

	assert.Equal(t, "dish_001", doc.Find(".dish-card").AttrOr("data-dish-id", ""))
	assert.Equal(t, "₾12", doc.Find(".dish-price").Text())
	assert.Equal(t, d.Name, doc.Find(".dish-name").Text())
	assert.Equal(t, "https://images.example.com/khinkali.jpg", doc.Find("img.object-cover").AttrOr("src", ""))

	t.Run("caps ingredients at four", func(t *testing.T) {
		badges := doc.Find(".dish-ingredients .badge")
		assert.Equal(t, 5, badges.Length())
		assert.Equal(t, "+1 more", doc.Find(".badge-more").Text())
	})

	t.Run("lists every allergen", func(t *testing.T) {
		assert.Equal(t, 2, doc.Find(".dish-allergens .badge").Length())
	})

	t.Run("shows restaurant and price tier", func(t *testing.T) {
		assert.Equal(t, "Restaurant: Sakhli", doc.Find(".dish-restaurant").Text())

		icons := doc.Find(".price-tier img")
		require.Equal(t, PriceTiers, icons.Length())
		assert.Equal(t, disabledDollarIcon, icons.Eq(1).AttrOr("src", ""))
		assert.Equal(t, dollarIcon, icons.Eq(2).AttrOr("src", ""))
	})
}

func TestDishCard_FallbackRestaurantLabel(t *testing.T) {
	doc := renderCard(t, models.Dish{Name: "სუპი", RestaurantID: "rest_003", Ingredients: []string{"ბრინჯი"}})

	assert.Equal(t, "Restaurant: Restaurant #003", doc.Find(".dish-restaurant").Text())
	assert.Equal(t, 0, doc.Find(".badge-more").Length())
}

func TestDishCard_EscapesTextAndSanitizesImage(t *testing.T) {
	var sb strings.Builder
	d := models.Dish{
		Name:        `<script>alert(1)</script>`,
		Description: `"quoted" & <b>`,
		ImageURL:    "javascript:alert(1)",
	}
	require.NoError(t, DishCard(d).Render(context.Background(), &sb))

	out := sb.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&#34;quoted&#34; &amp; &lt;b&gt;")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, string(templ.FailedSanitizationURL))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₾8.5", FormatPrice(8.5))
	assert.Equal(t, "₾15", FormatPrice(15))
}

func TestDollarIcons(t *testing.T) {
	assert.Equal(t, []string{dollarIcon, dollarIcon, dollarIcon, dollarIcon}, DollarIcons(0))
	assert.Equal(t, []string{disabledDollarIcon, disabledDollarIcon, disabledDollarIcon, dollarIcon}, DollarIcons(3))
}
