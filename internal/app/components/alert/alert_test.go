package alert

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, p Props) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Alert(p).Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestAlert(t *testing.T) {
	t.Run("error alerts default and use role alert", func(t *testing.T) {
		doc := render(t, Props{Title: "ძიება ვერ მოხერხდა", Message: "Search failed"})

		box := doc.Find(`[role="alert"]`)
		require.Equal(t, 1, box.Length())
		assert.Equal(t, "error", box.AttrOr("data-variant", ""))
		assert.Contains(t, box.AttrOr("class", ""), "bg-red-50")
		assert.Equal(t, "ძიება ვერ მოხერხდა", doc.Find(".alert-title").Text())
		assert.Equal(t, 0, doc.Find(".alert-detail").Length())
	})

	t.Run("info alerts use role status", func(t *testing.T) {
		doc := render(t, Props{Message: "Nothing new", Detail: "try later", Variant: VariantInfo})
		assert.Equal(t, 1, doc.Find(`[role="status"]`).Length())
		assert.Equal(t, "try later", doc.Find(".alert-detail").Text())
	})
}
