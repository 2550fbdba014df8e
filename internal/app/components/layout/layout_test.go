package layout

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

func TestPage(t *testing.T) {
	var sb strings.Builder
	err := Page(models.LayoutTempl{
		Title:     "Dishes - S.U.P.R.A.",
		Nav:       models.MainNav,
		ActiveNav: "Restaurants",
		Content:   templ.Raw(`<p id="content">hello</p>`),
	}).Render(context.Background(), &sb)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	assert.Equal(t, "Dishes - S.U.P.R.A.", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#alerts").Length())
	assert.Equal(t, "hello", doc.Find("main #content").Text())
	assert.Equal(t, 1, doc.Find(`script[src*="htmx.org"]`).Length())

	current := doc.Find(`nav a[aria-current="page"]`)
	require.Equal(t, 1, current.Length())
	assert.Equal(t, "Restaurants", current.Text())
	href, _ := current.Attr("href")
	assert.Equal(t, "/restaurants", href)
}
