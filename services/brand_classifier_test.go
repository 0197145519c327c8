package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsc-analyzer/models"
)

func TestBrandClassifierIsBrand(t *testing.T) {
	c := NewBrandClassifier([]string{"scite", "scite.ai"})

	tests := []struct {
		query string
		want  bool
	}{
		{"what is scite.ai used for", true},
		{"SCITE reviews", true},
		{"what is semantic search", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.IsBrand(tt.query); got != tt.want {
			t.Errorf("IsBrand(%q) = %v; want %v", tt.query, got, tt.want)
		}
	}
}

func TestBrandClassifierSeparatorVariants(t *testing.T) {
	c := NewBrandClassifier([]string{"scite.ai"})

	for _, q := range []string{"scite.ai", "scite ai pricing", "scite-ai", "scite_ai", "sciteai", "scite . ai"} {
		assert.True(t, c.IsBrand(q), "expected %q to match scite.ai", q)
	}
	assert.False(t, c.IsBrand("scite"), "a single word of a multi-word term is not enough")
}

func TestBrandClassifierEscapesMetacharacters(t *testing.T) {
	c := NewBrandClassifier([]string{"c++ tools", "a(b)"})

	assert.True(t, c.IsBrand("best c++ tools"))
	assert.True(t, c.IsBrand("a(b) login"))
	assert.False(t, c.IsBrand("ab"))
	assert.False(t, c.IsBrand("c tools"))
}

func TestBrandClassifierNoTerms(t *testing.T) {
	for _, terms := range [][]string{nil, {}, {"", " ", "-."}} {
		c := NewBrandClassifier(terms)
		assert.False(t, c.Enabled(), "terms %q", terms)
		assert.False(t, c.IsBrand("anything"))
	}
}

func TestBrandClassifierClassifyAnnotatesInPlace(t *testing.T) {
	queries := []*models.Row{
		query("what is scite.ai used for", 40, 100, 0.4, 1.5),
		query("what is semantic search", 10, 400, 0.025, 9),
	}

	split := NewBrandClassifier([]string{"scite", "scite.ai"}).Classify(queries)

	require.Len(t, split.Brand, 1)
	require.Len(t, split.NonBrand, 1)
	assert.Same(t, queries[0], split.Brand[0])
	assert.Same(t, queries[1], split.NonBrand[0])

	require.NotNil(t, queries[0].IsBrand)
	require.NotNil(t, queries[1].IsBrand)
	assert.True(t, *queries[0].IsBrand)
	assert.False(t, *queries[1].IsBrand)
	assert.Equal(t, models.FieldIsBrand, queries[0].Columns[len(queries[0].Columns)-1])
}

func TestBrandClassifierEmptyTermsMarksAllNonBrand(t *testing.T) {
	queries := []*models.Row{query("acme", 1, 1, 1, 1)}

	split := NewBrandClassifier(nil).Classify(queries)

	assert.Empty(t, split.Brand)
	assert.Len(t, split.NonBrand, 1)
	require.NotNil(t, queries[0].IsBrand)
	assert.False(t, *queries[0].IsBrand)
}
