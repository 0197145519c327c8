package storage

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/searchconsole-export.zip", "searchconsole-export"},
		{"Exportación Búsqueda.zip", "exportacion-busqueda"},
		{"~/Downloads/gsc-folder/", "gsc-folder"},
		{"Queries.csv.lz4", "queries"},
		{"report-2024.05.01.zip", "report-2024-05-01"},
		{"!!!.zip", "gsc-export"},
	}

	for _, tt := range tests {
		if got := Slug(tt.path); got != tt.want {
			t.Errorf("Slug(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}
