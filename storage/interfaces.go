package storage

import "gsc-analyzer/models"

// ResultExporter is the interface any output backend must satisfy.
type ResultExporter interface {
	Export(result *models.Result) error
}
