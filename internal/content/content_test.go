package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	pages, err := Pages()
	require.NoError(t, err)
	require.Len(t, pages, 3)

	slugs := make([]string, 0, len(pages))
	for _, p := range pages {
		slugs = append(slugs, p.Slug)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Body)
	}
	assert.ElementsMatch(t, []string{"about", "contact", "shipping-policy"}, slugs)
}

func TestPageBySlug(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		page, err := PageBySlug("shipping-policy")
		require.NoError(t, err)
		assert.Equal(t, "Shipping Policy", page.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := PageBySlug("returns")
		assert.ErrorIs(t, err, ErrPageNotFound)
	})
}
