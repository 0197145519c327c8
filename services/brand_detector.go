package services

import (
	"strings"
	"unicode/utf8"

	"github.com/pivolan/go_utils"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// stopWords never become brand roots even when they dominate brand queries.
var stopWords = []string{"the", "and", "for", "with", "how", "what", "login", "free"}

// minRootLength is exclusive: roots must be longer than this.
const minRootLength = 2

// DetectorThresholds are the signal cut-offs of the brand heuristic.
// Candidate thresholds pick the queries roots are mined from; brand
// thresholds decide likely_brand versus uncertain.
type DetectorThresholds struct {
	CandidateMinCTR      float64
	CandidateMaxPosition float64
	CandidateMinClicks   int64
	MaxCandidates        int
	BrandMinCTR          float64
	BrandMaxPosition     float64
}

// DefaultDetectorThresholds returns the stock cut-offs.
func DefaultDetectorThresholds() DetectorThresholds {
	return DetectorThresholds{
		CandidateMinCTR:      0.25,
		CandidateMaxPosition: 2.5,
		CandidateMinClicks:   100,
		MaxCandidates:        20,
		BrandMinCTR:          0.15,
		BrandMaxPosition:     3,
	}
}

// BrandDetector guesses brand roots from click, CTR and position signals.
// Its output is advisory and meant for a human to confirm.
type BrandDetector struct {
	logger     *utils.Logger
	thresholds DetectorThresholds
}

// NewBrandDetector creates a BrandDetector.
func NewBrandDetector(logger *utils.Logger, thresholds DetectorThresholds) *BrandDetector {
	return &BrandDetector{logger: logger, thresholds: thresholds}
}

// Detect proposes brand roots and sorts every query into likely_brand,
// uncertain or likely_nonbrand. hints are merged into the roots as-is.
func (d *BrandDetector) Detect(queries []*models.Row, hints []string) *models.BrandDetection {
	roots := d.roots(queries, hints)

	result := &models.BrandDetection{
		LikelyBrand:    []*models.Row{},
		Uncertain:      []*models.Row{},
		LikelyNonBrand: []*models.Row{},
		Roots:          roots,
	}

	for _, q := range queries {
		containsBrand := containsAny(strings.ToLower(q.Query), roots)

		switch {
		case containsBrand && q.CTR > d.thresholds.BrandMinCTR && q.Position < d.thresholds.BrandMaxPosition:
			result.LikelyBrand = append(result.LikelyBrand, q)
		case containsBrand:
			result.Uncertain = append(result.Uncertain, q)
		default:
			result.LikelyNonBrand = append(result.LikelyNonBrand, q)
		}
	}

	d.logger.Debug("[brand] roots=%v likely=%d uncertain=%d nonbrand=%d",
		roots, len(result.LikelyBrand), len(result.Uncertain), len(result.LikelyNonBrand))
	return result
}

// candidates returns, in input order, at most MaxCandidates queries whose
// signals look navigational.
func (d *BrandDetector) candidates(queries []*models.Row) []*models.Row {
	var out []*models.Row
	for _, q := range queries {
		if len(out) >= d.thresholds.MaxCandidates {
			break
		}
		if q.CTR > d.thresholds.CandidateMinCTR &&
			q.Position < d.thresholds.CandidateMaxPosition &&
			q.Clicks > d.thresholds.CandidateMinClicks {
			out = append(out, q)
		}
	}
	return out
}

func (d *BrandDetector) roots(queries []*models.Row, hints []string) []string {
	set := utils.NewStringSet()

	for _, q := range d.candidates(queries) {
		for _, word := range strings.Fields(strings.ToLower(q.Query)) {
			if utf8.RuneCountInString(word) > minRootLength && !isStopWord(word) {
				set.Add(word)
			}
		}
	}

	for _, hint := range hints {
		if h := strings.ToLower(strings.TrimSpace(hint)); h != "" {
			set.Add(h)
		}
	}

	return set.Sorted()
}

func isStopWord(word string) bool {
	return go_utils.InArray(word, stopWords)
}

func containsAny(text string, roots []string) bool {
	for _, root := range roots {
		if strings.Contains(text, root) {
			return true
		}
	}
	return false
}
