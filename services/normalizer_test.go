package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gsc-analyzer/models"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Top queries", "query"},
		{"queries", "query"},
		{"Query", "query"},
		{"Top pages", "page"},
		{"URL", "page"},
		{"  Clicks ", "clicks"},
		{"CTR", "ctr"},
		{"Average Position", "position"},
		{"avg position", "position"},
		{"Position", "position"},
		{"Country", "country"},
		{"Device", "device"},
		{"Date", "date"},
		{"Search Appearance", "search_appearance"},
		{"Some Custom Column", "some_custom_column"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.raw); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"1,234", 1234},
		{"1,234,567", 1234567},
		{"42", 42},
		{" 7 ", 7},
		{"", 0},
		{"n/a", 0},
		{"1.5", 0},
	}

	for _, tt := range tests {
		if got := parseCount(tt.raw); got != tt.want {
			t.Errorf("parseCount(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseCTR(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"5.2%", 0.052},
		{"0.052", 0.052},
		{"5.2", 0.052},
		{"45.0%", 0.45},
		{"1", 1},
		{"100%", 1},
		{"", 0},
		{"%", 0},
		{"abc", 0},
		{"NaN", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseCTR(tt.raw), 1e-12, "parseCTR(%q)", tt.raw)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1.2", 1.2},
		{"1,001.5", 1001.5},
		{"", 0},
		{"-", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := parsePosition(tt.raw); got != tt.want {
			t.Errorf("parsePosition(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeRow(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	row := n.Normalize(raw(
		"Top queries", "brand login",
		"Clicks", "1,500",
		"Impressions", "2,000",
		"CTR", "45.0%",
		"Position", "1.2",
	))

	assert.Equal(t, "brand login", row.Query)
	assert.Equal(t, int64(1500), row.Clicks)
	assert.Equal(t, int64(2000), row.Impressions)
	assert.InDelta(t, 0.45, row.CTR, 1e-12)
	assert.Equal(t, 1.2, row.Position)
	assert.Equal(t, []string{"query", "clicks", "impressions", "ctr", "position"}, row.Columns)
	assert.Nil(t, row.IsBrand)
}

func TestNormalizeMalformedNumbersDegradeToZero(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	assert.NotPanics(t, func() {
		row := n.Normalize(raw(
			"Query", "x",
			"Clicks", "lots",
			"Impressions", "",
			"CTR", "??%",
			"Position", "top",
		))
		assert.Zero(t, row.Clicks)
		assert.Zero(t, row.Impressions)
		assert.Zero(t, row.CTR)
		assert.Zero(t, row.Position)
	})
}

func TestNormalizeKeepsUnknownColumns(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	row := n.Normalize(raw("Search Appearance", "Videos", "Clicks", "3"))

	assert.Equal(t, "Videos", row.Extra["search_appearance"])
	assert.Equal(t, []string{"search_appearance", "clicks"}, row.Columns)
	assert.Equal(t, "Videos", row.StringValue("search_appearance"))
}

func TestNormalizeSynonymCollisionLastValueWins(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	row := n.Normalize(raw("URL", "https://a.example/", "Clicks", "1", "Page", "https://b.example/"))

	assert.Equal(t, "https://b.example/", row.Page)
	assert.Equal(t, []string{"page", "clicks"}, row.Columns)
}

func TestNormalizeCanonicalKeysIsIdempotent(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	first := n.Normalize(raw(
		"query", "generic widget",
		"clicks", "10",
		"impressions", "500",
		"ctr", "0.02",
		"position", "8.5",
	))

	again := models.RawRow{Keys: first.Keys(), Values: map[string]string{}}
	for _, k := range first.Keys() {
		again.Values[k] = first.StringValue(k)
	}

	assert.Equal(t, first, n.Normalize(again))
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	rows := n.NormalizeAll([]models.RawRow{
		raw("Page", "https://example.com/a", "Clicks", "2"),
		raw("Page", "https://example.com/b", "Clicks", "3"),
	})

	if assert.Len(t, rows, 2) {
		assert.Equal(t, "https://example.com/a", rows[0].Page)
		assert.Equal(t, int64(3), rows[1].Clicks)
	}
}
