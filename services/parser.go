package services

import (
	"time"

	uuid "github.com/satori/go.uuid"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// Parser runs the normalize → categorize → summarize pipeline over files
// supplied by a storage.SourceReader.
type Parser struct {
	logger      *utils.Logger
	normalizer  *Normalizer
	categorizer *Categorizer
	insights    *InsightService
}

// NewParser wires the pipeline stages around one logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{
		logger:      logger,
		normalizer:  NewNormalizer(logger),
		categorizer: NewCategorizer(logger),
		insights:    NewInsightService(logger),
	}
}

// Parse processes files in the order given. A later file of the same bucket
// replaces an earlier one. The summary includes a brand split when
// brandTerms holds at least one usable term.
func (p *Parser) Parse(source string, files []models.SourceFile, brandTerms []string) *models.Result {
	result := &models.Result{
		Dataset: models.NewDataset(),
		Metadata: models.Metadata{
			SourceFile:      source,
			FilesFound:      []string{},
			FilesUnassigned: []string{},
			RunID:           uuid.NewV4().String(),
			GeneratedAt:     time.Now().UTC(),
		},
	}

	for _, f := range files {
		result.Metadata.FilesFound = append(result.Metadata.FilesFound, f.Name)
		rows := p.normalizer.NormalizeAll(f.Rows)

		bucket, ok := p.categorizer.Categorize(f.Name, rows)
		if !ok {
			result.Metadata.FilesUnassigned = append(result.Metadata.FilesUnassigned, f.Name)
			continue
		}
		if existing := result.Rows(bucket); len(existing) > 0 {
			p.logger.Warn("[parser] %s replaces %d earlier %s rows", f.Name, len(existing), bucket)
		}
		result.Assign(bucket, rows)
		p.logger.Debug("[parser] %s → %s (%d rows)", f.Name, bucket, len(rows))
	}

	p.Summarize(result, brandTerms)
	p.logger.Info("[parser] Parsed %d files from %s: %d queries, %d pages",
		len(files), source, len(result.Queries), len(result.Pages))
	return result
}

// Summarize recomputes the summary, e.g. after the brand terms changed.
func (p *Parser) Summarize(result *models.Result, brandTerms []string) {
	result.Summary = p.insights.Generate(&result.Dataset, brandTerms)
}

// Insights exposes the summary aggregator for report rendering.
func (p *Parser) Insights() *InsightService {
	return p.insights
}
