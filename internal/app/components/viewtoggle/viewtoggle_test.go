package viewtoggle

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func TestViewToggle(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ViewToggle(models.ViewMap, "#results").Render(context.Background(), &sb))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	buttons := doc.Find("button")
	require.Equal(t, 2, buttons.Length())

	cards := doc.Find(`button[data-mode="cards"]`)
	assert.Equal(t, "Dish Cards", cards.Text())
	assert.Equal(t, "false", cards.AttrOr("aria-pressed", ""))
	assert.Equal(t, "/view?mode=cards", cards.AttrOr("hx-post", ""))

	mapBtn := doc.Find(`button[data-mode="map"]`)
	assert.Equal(t, "true", mapBtn.AttrOr("aria-pressed", ""))
	assert.Contains(t, mapBtn.AttrOr("class", ""), "bg-primary")
	assert.NotContains(t, mapBtn.AttrOr("class", ""), "text-muted-foreground")
}
