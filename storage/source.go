package storage

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pierrec/lz4"

	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

const csvExt = ".csv"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SourceReader turns an export on disk into an ordered list of files.
type SourceReader struct {
	logger *utils.Logger
}

// NewSourceReader creates a SourceReader with the given logger.
func NewSourceReader(logger *utils.Logger) *SourceReader {
	return &SourceReader{logger: logger}
}

// Read dispatches on the path type:
//   - directory: every *.csv directly inside it, sorted by name
//   - .zip: every member ending in .csv, in archive order
//   - .csv, .csv.gz, .csv.lz4: a single file
func (s *SourceReader) Read(path string) ([]models.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %q: %w", path, err)
	}
	if info.IsDir() {
		return s.readDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return s.readZip(path)
	case ".gz":
		return s.readCompressed(path, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case ".lz4":
		return s.readCompressed(path, func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	case csvExt:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("source: open %q: %w", path, err)
		}
		defer f.Close()
		file, err := readCSV(filepath.Base(path), f)
		if err != nil {
			return nil, err
		}
		return []models.SourceFile{file}, nil
	default:
		return nil, fmt.Errorf("source: unsupported file type %q", path)
	}
}

func (s *SourceReader) readDir(dir string) ([]models.SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("source: read dir %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != csvExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]models.SourceFile, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("source: open %q: %w", name, err)
		}
		file, err := readCSV(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	s.logger.Info("[source] Found %d csv files in %s", len(files), dir)
	return files, nil
}

func (s *SourceReader) readZip(path string) ([]models.SourceFile, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("source: open zip %q: %w", path, err)
	}
	defer zr.Close()

	var files []models.SourceFile
	for _, member := range zr.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(member.Name, csvExt) {
			s.logger.Debug("[source] Skipping zip member %s", member.Name)
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("source: open zip member %q: %w", member.Name, err)
		}
		file, err := readCSV(member.Name, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	s.logger.Info("[source] Found %d csv files in %s", len(files), path)
	return files, nil
}

func (s *SourceReader) readCompressed(path string, open func(io.Reader) (io.Reader, error)) ([]models.SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %q: %w", path, err)
	}
	defer f.Close()

	r, err := open(f)
	if err != nil {
		return nil, fmt.Errorf("source: decompress %q: %w", path, err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !strings.EqualFold(filepath.Ext(name), csvExt) {
		s.logger.Warn("[source] %s does not wrap a .csv file, reading it as csv anyway", path)
	}

	file, err := readCSV(name, r)
	if err != nil {
		return nil, err
	}
	return []models.SourceFile{file}, nil
}

// readCSV reads a header row and every record after it. A UTF-8 BOM before
// the header is dropped.
func readCSV(name string, r io.Reader) (models.SourceFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.SourceFile{}, fmt.Errorf("source: read %q: %w", name, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	file := models.SourceFile{Name: name, Rows: []models.RawRow{}}
	header, err := cr.Read()
	if err == io.EOF {
		return file, nil
	}
	if err != nil {
		return models.SourceFile{}, fmt.Errorf("source: read header of %q: %w", name, err)
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.SourceFile{}, fmt.Errorf("source: read %q: %w", name, err)
		}
		file.Rows = append(file.Rows, models.NewRawRow(header, record))
	}
	return file, nil
}
