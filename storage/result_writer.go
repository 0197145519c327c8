package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gsc-analyzer/config"
	"gsc-analyzer/models"
)

// ResultWriter dumps the whole Result as gsc_data.json or gsc_data.yaml.
type ResultWriter struct {
	dir    string
	format string
}

// NewResultWriter validates format and creates the output directory.
func NewResultWriter(dir, format string) (*ResultWriter, error) {
	if format != config.FormatJSON && format != config.FormatYAML {
		return nil, fmt.Errorf("result: unsupported format %q", format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("result: create output dir: %w", err)
	}
	return &ResultWriter{dir: dir, format: format}, nil
}

// Path is the file Export writes to.
func (w *ResultWriter) Path() string {
	return filepath.Join(w.dir, "gsc_data."+w.format)
}

func (w *ResultWriter) Export(result *models.Result) error {
	data, err := Marshal(result, w.format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.Path(), data, 0644); err != nil {
		return fmt.Errorf("result: write %q: %w", w.Path(), err)
	}
	return nil
}

// Marshal encodes result in the given format.
func Marshal(result *models.Result, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("result: encode json: %w", err)
		}
		return data, nil
	case config.FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("result: encode yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("result: unsupported format %q", format)
}
