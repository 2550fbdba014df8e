package tabs

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func TestRecommendationTabs(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RecommendationTabs(models.TabExplore).Render(context.Background(), &sb))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Find("#"+ID).Length())
	require.Equal(t, 3, doc.Find(`[role="tab"]`).Length())

	selected := doc.Find(`[aria-selected="true"]`)
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "explore", selected.AttrOr("data-tab", ""))
	assert.Equal(t, "Best to Explore", selected.Find(".tab-label").Text())
	assert.Equal(t, "/recommendations?tab=explore", selected.AttrOr("hx-get", ""))
	assert.Equal(t, "#"+ID, selected.AttrOr("hx-target", ""))

	best := doc.Find(`[data-tab="best"]`)
	assert.Equal(t, "Top-rated dishes based on quality and reviews", best.Find(".tab-description").Text())
}
