package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gsc-analyzer/config"
	"gsc-analyzer/models"
	"gsc-analyzer/services"
	"gsc-analyzer/storage"
	"gsc-analyzer/utils"
)

const usage = `Usage: gsc-analyzer [flags] <path_to_gsc_zip_or_dir> [output_directory]

Examples:
  gsc-analyzer ~/Downloads/searchconsole-export.zip ./output
  gsc-analyzer ~/Downloads/gsc-folder/ ./output
  gsc-analyzer -brand scite,scite.ai ~/Downloads/gsc.zip ./output

Flags:
`

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	brand := flag.String("brand", strings.Join(cfg.BrandTerms, ","), "confirmed brand terms, comma-separated")
	hints := flag.String("hints", strings.Join(cfg.BrandHints, ","), "extra brand roots for auto-detection, comma-separated")
	format := flag.String("format", cfg.OutputFormat, "result dump format: json or yaml")
	chart := flag.Bool("chart", cfg.WriteChart, "also render positions.png")
	autoExport := flag.Bool("export", false, "write outputs to ./output/<source name> when no output directory is given")
	debug := flag.Bool("debug", cfg.Debug, "verbose logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.BrandTerms = config.SplitList(*brand)
	cfg.BrandHints = config.SplitList(*hints)
	cfg.OutputFormat = strings.ToLower(*format)
	cfg.WriteChart = *chart
	cfg.Debug = *debug
	if flag.NArg() > 0 {
		cfg.SourcePath = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		cfg.OutputDir = flag.Arg(1)
	}
	if cfg.OutputDir == "" && *autoExport && cfg.SourcePath != "" {
		cfg.OutputDir = filepath.Join("output", storage.Slug(cfg.SourcePath))
	}
	logger.SetDebug(cfg.Debug)

	if cfg.SourcePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	files, err := storage.NewSourceReader(logger).Read(cfg.SourcePath)
	if err != nil {
		logger.Error("Path not readable: %v", err)
		os.Exit(1)
	}

	parser := services.NewParser(logger)
	result := parser.Parse(cfg.SourcePath, files, cfg.BrandTerms)

	var detection *models.BrandDetection
	if result.Summary.Brand == nil {
		detector := services.NewBrandDetector(logger, services.DetectorThresholds{
			CandidateMinCTR:      cfg.CandidateMinCTR,
			CandidateMaxPosition: cfg.CandidateMaxPosition,
			CandidateMinClicks:   cfg.CandidateMinClicks,
			MaxCandidates:        cfg.MaxCandidates,
			BrandMinCTR:          cfg.BrandMinCTR,
			BrandMaxPosition:     cfg.BrandMaxPosition,
		})
		detection = detector.Detect(result.Queries, cfg.BrandHints)
	}

	if cfg.OutputDir != "" {
		if err := export(cfg, result, logger); err != nil {
			logger.Error("Export failed: %v", err)
		} else {
			logger.Info("Data exported to: %s", cfg.OutputDir)
		}
	}

	parser.Insights().Print(result, detection)
}

// export writes the result dump, the per-bucket CSVs and optionally the chart.
func export(cfg *config.Config, result *models.Result, logger *utils.Logger) error {
	resultWriter, err := storage.NewResultWriter(cfg.OutputDir, cfg.OutputFormat)
	if err != nil {
		return err
	}
	csvWriter, err := storage.NewCSVWriter(cfg.OutputDir, cfg.ExportConcurrency, logger)
	if err != nil {
		return err
	}
	exporters := []storage.ResultExporter{resultWriter, csvWriter}

	if cfg.WriteChart {
		chartWriter, err := storage.NewChartWriter(cfg.OutputDir)
		if err != nil {
			return err
		}
		exporters = append(exporters, chartWriter)
	}

	for _, e := range exporters {
		if err := e.Export(result); err != nil {
			return err
		}
	}
	return nil
}
