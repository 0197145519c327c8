package services

import (
	"math"
	"strconv"
	"strings"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// keySynonyms collapses the column spellings seen across export variants.
var keySynonyms = map[string]string{
	"clicks":           models.FieldClicks,
	"impressions":      models.FieldImpressions,
	"ctr":              models.FieldCTR,
	"position":         models.FieldPosition,
	"average_position": models.FieldPosition,
	"avg_position":     models.FieldPosition,
	"query":            models.FieldQuery,
	"queries":          models.FieldQuery,
	"page":             models.FieldPage,
	"pages":            models.FieldPage,
	"url":              models.FieldPage,
	"country":          models.FieldCountry,
	"device":           models.FieldDevice,
	"date":             models.FieldDate,
}

// Normalizer maps raw export rows onto the canonical row shape.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// NormalizeKey canonicalizes a column name: "Top queries" → "query",
// "Average Position" → "position". Unknown names come back lowercased
// and underscored.
func NormalizeKey(key string) string {
	clean := strings.ToLower(strings.TrimSpace(key))
	clean = strings.ReplaceAll(clean, " ", "_")
	clean = strings.TrimPrefix(clean, "top_")
	if mapped, ok := keySynonyms[clean]; ok {
		return mapped
	}
	return clean
}

// NormalizeAll normalizes every row of one file.
func (n *Normalizer) NormalizeAll(raw []models.RawRow) []*models.Row {
	rows := make([]*models.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, n.Normalize(r))
	}
	return rows
}

// Normalize converts one raw row. It never fails: unparsable numbers
// become zero.
func (n *Normalizer) Normalize(raw models.RawRow) *models.Row {
	row := &models.Row{}

	for _, key := range raw.Keys {
		value := raw.Values[key]
		field := NormalizeKey(key)
		row.AddColumn(field)

		switch field {
		case models.FieldClicks:
			row.Clicks = parseCount(value)
		case models.FieldImpressions:
			row.Impressions = parseCount(value)
		case models.FieldCTR:
			row.CTR = parseCTR(value)
		case models.FieldPosition:
			row.Position = parsePosition(value)
		case models.FieldQuery:
			row.Query = value
		case models.FieldPage:
			row.Page = value
		case models.FieldCountry:
			row.Country = value
		case models.FieldDevice:
			row.Device = value
		case models.FieldDate:
			row.Date = value
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[field] = value
		}
	}

	if n.logger != nil {
		n.logger.Debug("[normalizer] %d raw columns → %v", len(raw.Keys), row.Columns)
	}
	return row
}

// parseCount handles "1,234" style integers.
func parseCount(raw string) int64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseCTR accepts "5.2%", "0.052" and "5.2" (a bare percentage above 1).
func parseCTR(raw string) float64 {
	if strings.Contains(raw, "%") {
		cleaned := strings.ReplaceAll(strings.ReplaceAll(raw, "%", ""), ",", "")
		val, ok := parseFloat(cleaned)
		if !ok {
			return 0
		}
		return val / 100
	}
	val, ok := parseFloat(raw)
	if !ok {
		return 0
	}
	if val > 1 {
		return val / 100
	}
	return val
}

func parsePosition(raw string) float64 {
	val, _ := parseFloat(strings.ReplaceAll(raw, ",", ""))
	return val
}

// parseFloat rejects NaN and infinities so results stay serializable.
func parseFloat(raw string) (float64, bool) {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}
