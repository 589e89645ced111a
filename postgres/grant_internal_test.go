package postgres

import (
	"testing"

	"github.com/fwojciec/grantqa"
	"github.com/stretchr/testify/assert"
)

func TestBuildFindQuery(t *testing.T) {
	t.Parallel()

	t.Run("selects all rows with empty filter", func(t *testing.T) {
		t.Parallel()

		query, args := buildFindQuery(grantqa.GrantFilter{})

		assert.Equal(t, "SELECT name, details, link, category, subcategory FROM grant_metadata WHERE true", query)
		assert.Empty(t, args)
	})

	t.Run("searches four fields with one parameter", func(t *testing.T) {
		t.Parallel()

		keyword := "DeFi"
		query, args := buildFindQuery(grantqa.GrantFilter{Keyword: &keyword, Limit: grantqa.SearchLimit})

		assert.Contains(t, query, "(name ILIKE $1 OR details ILIKE $1 OR category ILIKE $1 OR subcategory ILIKE $1)")
		assert.Contains(t, query, "LIMIT $2")
		assert.NotContains(t, query, "ORDER BY")
		assert.Equal(t, []any{"%DeFi%", 5}, args)
	})

	t.Run("numbers parameters in order", func(t *testing.T) {
		t.Parallel()

		keyword := "Aave"
		category := "Lending"
		query, args := buildFindQuery(grantqa.GrantFilter{Keyword: &keyword, Category: &category, Limit: 10, Offset: 20})

		assert.Contains(t, query, "lower(category) = lower($2)")
		assert.Contains(t, query, "LIMIT $3 OFFSET $4")
		assert.Equal(t, []any{"%Aave%", "Lending", 10, 20}, args)
	})
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%DeFi%", likePattern("DeFi"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestHashGrant(t *testing.T) {
	t.Parallel()

	a := &grantqa.Grant{Name: "A", Link: "https://a.example"}
	b := &grantqa.Grant{Name: "A", Link: "https://a.example"}
	c := &grantqa.Grant{Name: "A", Link: "https://a.example", Category: "DEX"}

	assert.Equal(t, hashGrant(a), hashGrant(b))
	assert.NotEqual(t, hashGrant(a), hashGrant(c))
	assert.Len(t, hashGrant(a), 16)
}
