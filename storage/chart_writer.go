package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gsc-analyzer/models"
)

// ChartWriter renders the position distribution as positions.png.
type ChartWriter struct {
	dir string
}

func NewChartWriter(dir string) (*ChartWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("chart: create output dir: %w", err)
	}
	return &ChartWriter{dir: dir}, nil
}

func (c *ChartWriter) Path() string {
	return filepath.Join(c.dir, "positions.png")
}

func (c *ChartWriter) Export(result *models.Result) error {
	png, err := DrawPositionChart(result.Summary)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path(), png, 0644); err != nil {
		return fmt.Errorf("chart: write %q: %w", c.Path(), err)
	}
	return nil
}

// DrawPositionChart renders the overlapping position buckets as a bar chart.
func DrawPositionChart(summary *models.Summary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("chart: no summary to draw")
	}

	bars := []chart.Value{
		{Label: "Top 3", Value: float64(summary.QueriesInTop3)},
		{Label: "Top 10", Value: float64(summary.QueriesInTop10)},
		{Label: "4-10", Value: float64(summary.QueriesPosition4To10)},
		{Label: "11-20", Value: float64(summary.QueriesPosition11To20)},
		{Label: "Opportunities", Value: float64(summary.HighImpressionLowPosition)},
	}

	// go-chart cannot scale an axis whose range is zero.
	empty := true
	for _, b := range bars {
		if b.Value > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil, fmt.Errorf("chart: no queries to draw")
	}

	graph := chart.BarChart{
		Title: "Query Position Distribution",
		Background: chart.Style{
			Padding:     chart.Box{Top: 40},
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorFromHex("efefef"),
			StrokeWidth: 1,
		},
		Height:   512,
		Width:    1024,
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Queries",
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("chart: render: %w", err)
	}
	return buffer.Bytes(), nil
}
