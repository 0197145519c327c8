package models

import "time"

// Bucket names the semantic category an export file belongs to.
type Bucket string

const (
	BucketQueries          Bucket = "queries"
	BucketPages            Bucket = "pages"
	BucketCountries        Bucket = "countries"
	BucketDevices          Bucket = "devices"
	BucketDates            Bucket = "dates"
	BucketSearchAppearance Bucket = "search_appearance"
)

// Buckets lists every bucket in export order.
var Buckets = []Bucket{
	BucketQueries,
	BucketPages,
	BucketCountries,
	BucketDevices,
	BucketDates,
	BucketSearchAppearance,
}

// SourceFile is one delimited-text file discovered in an archive or folder.
type SourceFile struct {
	Name string
	Rows []RawRow
}

// Dataset holds at most one row sequence per bucket.
type Dataset struct {
	Queries          []*Row `json:"queries" yaml:"queries"`
	Pages            []*Row `json:"pages" yaml:"pages"`
	Countries        []*Row `json:"countries" yaml:"countries"`
	Devices          []*Row `json:"devices" yaml:"devices"`
	Dates            []*Row `json:"dates" yaml:"dates"`
	SearchAppearance []*Row `json:"search_appearance" yaml:"search_appearance"`
}

// NewDataset returns a Dataset with every bucket empty but non-nil, so
// serialized output shows [] rather than null.
func NewDataset() Dataset {
	return Dataset{
		Queries:          []*Row{},
		Pages:            []*Row{},
		Countries:        []*Row{},
		Devices:          []*Row{},
		Dates:            []*Row{},
		SearchAppearance: []*Row{},
	}
}

// Assign replaces the rows of bucket b. Earlier rows are discarded.
func (d *Dataset) Assign(b Bucket, rows []*Row) {
	if rows == nil {
		rows = []*Row{}
	}
	switch b {
	case BucketQueries:
		d.Queries = rows
	case BucketPages:
		d.Pages = rows
	case BucketCountries:
		d.Countries = rows
	case BucketDevices:
		d.Devices = rows
	case BucketDates:
		d.Dates = rows
	case BucketSearchAppearance:
		d.SearchAppearance = rows
	}
}

// Rows returns the rows of bucket b.
func (d *Dataset) Rows(b Bucket) []*Row {
	switch b {
	case BucketQueries:
		return d.Queries
	case BucketPages:
		return d.Pages
	case BucketCountries:
		return d.Countries
	case BucketDevices:
		return d.Devices
	case BucketDates:
		return d.Dates
	case BucketSearchAppearance:
		return d.SearchAppearance
	}
	return nil
}

// Metadata describes where a Result came from.
type Metadata struct {
	SourceFile      string    `json:"source_file" yaml:"source_file"`
	FilesFound      []string  `json:"files_found" yaml:"files_found"`
	FilesUnassigned []string  `json:"files_unassigned" yaml:"files_unassigned"`
	RunID           string    `json:"run_id" yaml:"run_id"`
	GeneratedAt     time.Time `json:"generated_at" yaml:"generated_at"`
}

// BrandSegment aggregates one side of the brand/non-brand split.
type BrandSegment struct {
	QueryCount  int     `json:"query_count" yaml:"query_count"`
	Clicks      int64   `json:"clicks" yaml:"clicks"`
	Impressions int64   `json:"impressions" yaml:"impressions"`
	ClickShare  float64 `json:"click_share" yaml:"click_share"`
	AvgCTR      float64 `json:"avg_ctr" yaml:"avg_ctr"`
	AvgPosition float64 `json:"avg_position" yaml:"avg_position"`
}

// Summary is a read-only projection over the queries bucket.
type Summary struct {
	TotalQueries              int     `json:"total_queries" yaml:"total_queries"`
	TotalPages                int     `json:"total_pages" yaml:"total_pages"`
	TotalClicks               int64   `json:"total_clicks" yaml:"total_clicks"`
	TotalImpressions          int64   `json:"total_impressions" yaml:"total_impressions"`
	AvgCTR                    float64 `json:"avg_ctr" yaml:"avg_ctr"`
	AvgPosition               float64 `json:"avg_position" yaml:"avg_position"`
	QueriesInTop3             int     `json:"queries_in_top_3" yaml:"queries_in_top_3"`
	QueriesInTop10            int     `json:"queries_in_top_10" yaml:"queries_in_top_10"`
	QueriesPosition4To10      int     `json:"queries_position_4_to_10" yaml:"queries_position_4_to_10"`
	QueriesPosition11To20     int     `json:"queries_position_11_to_20" yaml:"queries_position_11_to_20"`
	HighImpressionLowPosition int     `json:"high_impression_low_position" yaml:"high_impression_low_position"`

	// Brand and NonBrand are nil unless brand terms were supplied.
	Brand    *BrandSegment `json:"brand,omitempty" yaml:"brand,omitempty"`
	NonBrand *BrandSegment `json:"nonbrand,omitempty" yaml:"nonbrand,omitempty"`
}

// Result is everything one parse run produces.
type Result struct {
	Dataset  `yaml:",inline"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Summary  *Summary `json:"summary" yaml:"summary"`
}

// BrandDetection is the advisory output of the brand heuristic.
type BrandDetection struct {
	LikelyBrand    []*Row   `json:"likely_brand" yaml:"likely_brand"`
	Uncertain      []*Row   `json:"uncertain" yaml:"uncertain"`
	LikelyNonBrand []*Row   `json:"likely_nonbrand" yaml:"likely_nonbrand"`
	Roots          []string `json:"detected_brand_roots" yaml:"detected_brand_roots"`
}

// BrandClassification partitions queries by confirmed brand terms.
type BrandClassification struct {
	Brand    []*Row `json:"brand" yaml:"brand"`
	NonBrand []*Row `json:"nonbrand" yaml:"nonbrand"`
}
