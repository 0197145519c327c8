package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

var sourceExts = map[string]bool{".zip": true, ".gz": true, ".lz4": true, ".csv": true}

// Slug turns a source path into an ASCII directory name:
// "Exportación Búsqueda.zip" → "exportacion-busqueda".
func Slug(path string) string {
	base := filepath.Base(strings.TrimRight(path, `/\`))
	for ext := filepath.Ext(base); sourceExts[strings.ToLower(ext)]; ext = filepath.Ext(base) {
		base = strings.TrimSuffix(base, ext)
	}
	s := strings.ToLower(unidecode.Unidecode(base))
	s = strings.Trim(nonSlugChars.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return "gsc-export"
	}
	return s
}
