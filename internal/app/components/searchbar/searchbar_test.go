package searchbar

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestSearchBar(t *testing.T) {
	var sb strings.Builder
	err := SearchBar(Props{
		Query:       "ხინ",
		Suggestions: []string{"ხინკალი", "spicy"},
		Target:      "#results",
	}).Render(context.Background(), &sb)
	require.NoError(t, err)
	doc := parse(t, sb.String())

	input := doc.Find("#" + InputID)
	require.Equal(t, 1, input.Length())
	assert.Equal(t, "ხინ", input.AttrOr("value", ""))
	assert.Equal(t, "q", input.AttrOr("name", ""))
	assert.Equal(t, "/dishes/filter", input.AttrOr("hx-get", ""))
	assert.Equal(t, Placeholder, input.AttrOr("placeholder", ""))
	_, oob := input.Attr("hx-swap-oob")
	assert.False(t, oob)

	form := doc.Find("form#search-form")
	assert.Equal(t, "/dishes/search", form.AttrOr("hx-post", ""))
	assert.Equal(t, "multipart/form-data", form.AttrOr("hx-encoding", ""))
	assert.Equal(t, 1, form.Find(`input[type="file"][name="file"]`).Length())

	chips := doc.Find("button.suggestion")
	require.Equal(t, 2, chips.Length())
	assert.Equal(t, "suggestion-0", chips.First().AttrOr("id", ""))
	assert.Equal(t, "ხინკალი", chips.First().AttrOr("value", ""))
}

func TestInput_OutOfBand(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Input("spicy", "#results", true).Render(context.Background(), &sb))
	doc := parse(t, sb.String())

	input := doc.Find("#" + InputID)
	assert.Equal(t, "true", input.AttrOr("hx-swap-oob", ""))
	assert.Equal(t, "spicy", input.AttrOr("value", ""))
}
