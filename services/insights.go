package services

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// Position bucket boundaries, inclusive. Buckets overlap on purpose:
// a query at position 7 counts in both top-10 and 4–10.
const (
	top3MaxPosition       = 3
	top10MaxPosition      = 10
	midRangeMinPosition   = 4
	secondPageMinPosition = 11
	secondPageMaxPosition = 20

	opportunityMinImpressions = 100
	opportunityMinPosition    = 5
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the summary over ds.Queries. With usable brandTerms the
// queries are classified in place and brand/non-brand segments are added.
func (s *InsightService) Generate(ds *models.Dataset, brandTerms []string) *models.Summary {
	queries := ds.Queries
	summary := &models.Summary{
		TotalQueries: len(queries),
		TotalPages:   len(ds.Pages),
	}

	var ctrSum, positionSum float64
	for _, q := range queries {
		summary.TotalClicks += q.Clicks
		summary.TotalImpressions += q.Impressions
		ctrSum += q.CTR
		positionSum += q.Position

		pos := q.Position
		if pos <= top3MaxPosition {
			summary.QueriesInTop3++
		}
		if pos <= top10MaxPosition {
			summary.QueriesInTop10++
		}
		if pos >= midRangeMinPosition && pos <= top10MaxPosition {
			summary.QueriesPosition4To10++
		}
		if pos >= secondPageMinPosition && pos <= secondPageMaxPosition {
			summary.QueriesPosition11To20++
		}
		if q.Impressions >= opportunityMinImpressions && pos > opportunityMinPosition {
			summary.HighImpressionLowPosition++
		}
	}
	if len(queries) > 0 {
		summary.AvgCTR = ctrSum / float64(len(queries))
		summary.AvgPosition = positionSum / float64(len(queries))
	}

	classifier := NewBrandClassifier(brandTerms)
	if classifier.Enabled() {
		split := classifier.Classify(queries)
		summary.Brand = segment(split.Brand, summary.TotalClicks)
		summary.NonBrand = segment(split.NonBrand, summary.TotalClicks)
		s.logger.Info("[insights] Brand split: %d brand / %d non-brand queries",
			summary.Brand.QueryCount, summary.NonBrand.QueryCount)
	}

	return summary
}

func segment(rows []*models.Row, totalClicks int64) *models.BrandSegment {
	seg := &models.BrandSegment{QueryCount: len(rows)}
	var ctrSum, positionSum float64
	for _, q := range rows {
		seg.Clicks += q.Clicks
		seg.Impressions += q.Impressions
		ctrSum += q.CTR
		positionSum += q.Position
	}
	if totalClicks > 0 {
		seg.ClickShare = float64(seg.Clicks) / float64(totalClicks)
	}
	if len(rows) > 0 {
		seg.AvgCTR = ctrSum / float64(len(rows))
		seg.AvgPosition = positionSum / float64(len(rows))
	}
	return seg
}

// Render builds the console report. detection may be nil; it is shown only
// when the summary carries no brand split.
func (s *InsightService) Render(r *models.Result, detection *models.BrandDetection) string {
	var b strings.Builder
	sum := r.Summary
	sep := strings.Repeat("═", 54)

	fmt.Fprintf(&b, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(&b, "\033[1;35m  📊 SEARCH CONSOLE DATA SUMMARY\033[0m\n")
	fmt.Fprintf(&b, "\033[1;35m%s\033[0m\n\n", sep)
	fmt.Fprintf(&b, "  Files found: %s\n", strings.Join(r.Metadata.FilesFound, ", "))
	if len(r.Metadata.FilesUnassigned) > 0 {
		fmt.Fprintf(&b, "  Not categorized: %s\n", strings.Join(r.Metadata.FilesUnassigned, ", "))
	}
	b.WriteString("\n")

	overview := newReportTable("Overview")
	overview.AppendRows([]table.Row{
		{"Queries", sum.TotalQueries},
		{"Pages", sum.TotalPages},
		{"Total clicks", sum.TotalClicks},
		{"Total impressions", sum.TotalImpressions},
		{"Avg CTR", fmt.Sprintf("%.2f%%", sum.AvgCTR*100)},
		{"Avg position", fmt.Sprintf("%.1f", sum.AvgPosition)},
	})
	b.WriteString(overview.Render())
	b.WriteString("\n\n")

	positions := newReportTable("Position distribution")
	positions.AppendRows([]table.Row{
		{"Top 3", sum.QueriesInTop3},
		{"Top 10", sum.QueriesInTop10},
		{"Positions 4-10", sum.QueriesPosition4To10},
		{"Positions 11-20", sum.QueriesPosition11To20},
		{"High-volume keywords outside top 5", sum.HighImpressionLowPosition},
	})
	b.WriteString(positions.Render())
	b.WriteString("\n")

	if sum.Brand != nil && sum.NonBrand != nil {
		b.WriteString("\n")
		brand := table.NewWriter()
		brand.SetTitle("Brand vs non-brand")
		brand.AppendHeader(table.Row{"", "Queries", "Clicks", "Share", "Avg CTR", "Avg position"})
		for _, row := range []struct {
			label string
			seg   *models.BrandSegment
		}{{"Brand", sum.Brand}, {"Non-brand", sum.NonBrand}} {
			brand.AppendRow(table.Row{
				row.label,
				row.seg.QueryCount,
				row.seg.Clicks,
				fmt.Sprintf("%.1f%%", row.seg.ClickShare*100),
				fmt.Sprintf("%.1f%%", row.seg.AvgCTR*100),
				fmt.Sprintf("%.1f", row.seg.AvgPosition),
			})
		}
		brand.SetStyle(table.StyleDefault)
		b.WriteString(brand.Render())
		b.WriteString("\n")
	} else if detection != nil && len(detection.Roots) > 0 {
		roots := strings.Join(detection.Roots, ",")
		fmt.Fprintf(&b, "\n  🔍 Detected potential brand terms: %s\n", strings.Join(detection.Roots, ", "))
		fmt.Fprintf(&b, "     Run with -brand to classify: -brand %s\n", roots)
	}

	return b.String()
}

// Print writes the console report to stdout.
func (s *InsightService) Print(r *models.Result, detection *models.BrandDetection) {
	fmt.Print(s.Render(r, detection))
}

func newReportTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleDefault)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return t
}
