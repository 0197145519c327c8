package services

import (
	"regexp"
	"strings"

	"gsc-analyzer/models"
)

// separatorRun is the set of characters treated as interchangeable between
// the words of a brand term: "scite.ai", "scite ai" and "scite-ai" all match.
const separatorRun = `[\s._-]*`

func isTermSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '.', '_', '-':
		return true
	}
	return false
}

// BrandClassifier splits queries into brand and non-brand using confirmed
// brand terms.
type BrandClassifier struct {
	pattern *regexp.Regexp
}

// NewBrandClassifier compiles terms into one alternation. Blank terms are
// ignored; with no usable terms the classifier marks everything non-brand.
func NewBrandClassifier(terms []string) *BrandClassifier {
	return &BrandClassifier{pattern: brandPattern(terms)}
}

func brandPattern(terms []string) *regexp.Regexp {
	var alternatives []string
	for _, term := range terms {
		words := strings.FieldsFunc(strings.ToLower(term), isTermSeparator)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, separatorRun))
	}
	if len(alternatives) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(alternatives, "|"))
}

// Enabled reports whether at least one usable brand term was supplied.
func (c *BrandClassifier) Enabled() bool {
	return c.pattern != nil
}

// IsBrand tests one query text.
func (c *BrandClassifier) IsBrand(query string) bool {
	if c.pattern == nil {
		return false
	}
	return c.pattern.MatchString(strings.ToLower(query))
}

// Classify partitions queries and records the outcome on each row via
// SetBrand. The rows are the same objects held by the dataset, so the
// annotation shows up in every export of the queries bucket.
func (c *BrandClassifier) Classify(queries []*models.Row) *models.BrandClassification {
	result := &models.BrandClassification{
		Brand:    []*models.Row{},
		NonBrand: []*models.Row{},
	}
	for _, q := range queries {
		isBrand := c.IsBrand(q.Query)
		q.SetBrand(isBrand)
		if isBrand {
			result.Brand = append(result.Brand, q)
		} else {
			result.NonBrand = append(result.NonBrand, q)
		}
	}
	return result
}
