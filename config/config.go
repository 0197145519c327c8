package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats for the structured result dump.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SourcePath string
	OutputDir  string

	BrandTerms []string
	BrandHints []string

	OutputFormat      string
	WriteChart        bool
	ExportConcurrency int
	Debug             bool

	CandidateMinCTR      float64
	CandidateMaxPosition float64
	CandidateMinClicks   int64
	MaxCandidates        int
	BrandMinCTR          float64
	BrandMaxPosition     float64
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SourcePath: getEnv("GSC_SOURCE", ""),
		OutputDir:  getEnv("GSC_OUTPUT_DIR", ""),

		BrandTerms: getEnvList("GSC_BRAND_TERMS"),
		BrandHints: getEnvList("GSC_BRAND_HINTS"),

		OutputFormat:      strings.ToLower(getEnv("OUTPUT_FORMAT", FormatJSON)),
		WriteChart:        getEnvBool("CHART", false),
		ExportConcurrency: getEnvInt("EXPORT_CONCURRENCY", 3),
		Debug:             getEnvBool("DEBUG", false),

		CandidateMinCTR:      getEnvFloat("BRAND_CANDIDATE_MIN_CTR", 0.25),
		CandidateMaxPosition: getEnvFloat("BRAND_CANDIDATE_MAX_POSITION", 2.5),
		CandidateMinClicks:   int64(getEnvInt("BRAND_CANDIDATE_MIN_CLICKS", 100)),
		MaxCandidates:        getEnvInt("BRAND_MAX_CANDIDATES", 20),
		BrandMinCTR:          getEnvFloat("BRAND_MIN_CTR", 0.15),
		BrandMaxPosition:     getEnvFloat("BRAND_MAX_POSITION", 3),
	}
}

// SplitList splits a comma-separated list, trimming entries and dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	return SplitList(os.Getenv(key))
}
