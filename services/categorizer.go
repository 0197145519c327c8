package services

import (
	"strings"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// nameRule routes a file to a bucket when its name contains any of the
// listed fragments. allOf rules need every fragment present.
type nameRule struct {
	bucket    models.Bucket
	fragments []string
	allOf     bool
}

// Order matters: "queries" must win over "pages" for a name containing both.
var nameRules = []nameRule{
	{bucket: models.BucketQueries, fragments: []string{"queries", "query"}},
	{bucket: models.BucketPages, fragments: []string{"pages", "page"}},
	{bucket: models.BucketCountries, fragments: []string{"countries", "country"}},
	{bucket: models.BucketDevices, fragments: []string{"devices", "device"}},
	{bucket: models.BucketDates, fragments: []string{"dates", "date", "chart"}},
	{bucket: models.BucketSearchAppearance, fragments: []string{"search", "appearance"}, allOf: true},
}

// Categorizer decides which bucket an export file belongs to.
type Categorizer struct {
	logger *utils.Logger
}

// NewCategorizer creates a Categorizer with the given logger.
func NewCategorizer(logger *utils.Logger) *Categorizer {
	return &Categorizer{logger: logger}
}

// Categorize returns the bucket for a file, or false when neither the name
// nor the first row's columns identify it.
func (c *Categorizer) Categorize(fileID string, rows []*models.Row) (models.Bucket, bool) {
	name := strings.ToLower(fileID)

	for _, rule := range nameRules {
		if rule.matches(name) {
			return rule.bucket, true
		}
	}

	if len(rows) > 0 {
		if rows[0].Has(models.FieldQuery) {
			return models.BucketQueries, true
		}
		if rows[0].Has(models.FieldPage) {
			return models.BucketPages, true
		}
	}

	c.logger.Warn("[categorizer] %s matches no bucket, %d rows dropped", fileID, len(rows))
	return "", false
}

func (r nameRule) matches(name string) bool {
	for _, fragment := range r.fragments {
		found := strings.Contains(name, fragment)
		if r.allOf && !found {
			return false
		}
		if !r.allOf && found {
			return true
		}
	}
	return r.allOf
}
