package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

// CSVWriter exports every non-empty bucket as <bucket>.csv. Buckets are
// written concurrently, one file per worker.
type CSVWriter struct {
	dir         string
	concurrency int
	logger      *utils.Logger
}

// NewCSVWriter creates the output directory if needed.
func NewCSVWriter(dir string, concurrency int, logger *utils.Logger) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &CSVWriter{dir: dir, concurrency: concurrency, logger: logger}, nil
}

// Export writes one file per non-empty bucket and returns the first error.
func (c *CSVWriter) Export(result *models.Result) error {
	pool := utils.NewWorkerPool(c.concurrency)
	for _, bucket := range models.Buckets {
		rows := result.Rows(bucket)
		if len(rows) == 0 {
			continue
		}
		path := filepath.Join(c.dir, string(bucket)+".csv")
		pool.Submit(func() error {
			if err := WriteRows(path, rows); err != nil {
				return err
			}
			c.logger.Debug("[csv] Wrote %d rows to %s", len(rows), path)
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// WriteRows writes rows as a flat table. The header is the first row's
// column order; later rows fill the same columns, blank where absent.
func WriteRows(path string, rows []*models.Row) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := rows[0].Keys()
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	record := make([]string, len(header))
	for _, r := range rows {
		for i, column := range header {
			record[i] = r.StringValue(column)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush %q: %w", path, err)
	}
	return nil
}
