package services

import (
	"testing"

	"gsc-analyzer/models"
)

func TestCategorizeByName(t *testing.T) {
	c := NewCategorizer(newTestLogger())

	tests := []struct {
		name string
		want models.Bucket
	}{
		{"Queries.csv", models.BucketQueries},
		{"top_query_report.csv", models.BucketQueries},
		{"Pages.csv", models.BucketPages},
		{"Countries.csv", models.BucketCountries},
		{"Devices.csv", models.BucketDevices},
		{"Dates.csv", models.BucketDates},
		{"Chart.csv", models.BucketDates},
		{"Search appearance.csv", models.BucketSearchAppearance},
		{"export/Queries by page.csv", models.BucketQueries},
	}

	for _, tt := range tests {
		got, ok := c.Categorize(tt.name, nil)
		if !ok || got != tt.want {
			t.Errorf("Categorize(%q) = %q, %v; want %q", tt.name, got, ok, tt.want)
		}
	}
}

func TestCategorizeNameWinsOverContent(t *testing.T) {
	c := NewCategorizer(newTestLogger())
	rows := []*models.Row{{Page: "https://example.com/", Columns: []string{"page"}}}

	got, ok := c.Categorize("Queries.csv", rows)
	if !ok || got != models.BucketQueries {
		t.Errorf("expected queries bucket, got %q (%v)", got, ok)
	}
}

func TestCategorizeByContent(t *testing.T) {
	c := NewCategorizer(newTestLogger())

	withQuery := []*models.Row{{Query: "widget", Columns: []string{"query", "clicks"}}}
	if got, ok := c.Categorize("export1.csv", withQuery); !ok || got != models.BucketQueries {
		t.Errorf("query column: got %q (%v), want queries", got, ok)
	}

	withPage := []*models.Row{{Page: "https://example.com/", Columns: []string{"page", "clicks"}}}
	if got, ok := c.Categorize("export1.csv", withPage); !ok || got != models.BucketPages {
		t.Errorf("page column: got %q (%v), want pages", got, ok)
	}
}

func TestCategorizeUnknownIsDropped(t *testing.T) {
	c := NewCategorizer(newTestLogger())

	rows := []*models.Row{{Columns: []string{"filter", "value"}}}
	if got, ok := c.Categorize("Filters.csv", rows); ok {
		t.Errorf("expected no bucket, got %q", got)
	}
	if got, ok := c.Categorize("export1.csv", nil); ok {
		t.Errorf("expected no bucket for empty file, got %q", got)
	}
	// "search" alone is not enough for search_appearance.
	if got, ok := c.Categorize("search.csv", nil); ok {
		t.Errorf("expected no bucket for search.csv, got %q", got)
	}
}
