package services

import (
	"gsc-analyzer/models"
	"gsc-analyzer/utils"
)

func newTestLogger() *utils.Logger { return utils.NewDiscardLogger() }

// raw builds a RawRow from alternating key/value pairs, keeping their order.
func raw(kv ...string) models.RawRow {
	var header, record []string
	for i := 0; i+1 < len(kv); i += 2 {
		header = append(header, kv[i])
		record = append(record, kv[i+1])
	}
	return models.NewRawRow(header, record)
}

func query(text string, clicks, impressions int64, ctr, position float64) *models.Row {
	return &models.Row{
		Query:       text,
		Clicks:      clicks,
		Impressions: impressions,
		CTR:         ctr,
		Position:    position,
		Columns: []string{
			models.FieldQuery, models.FieldClicks, models.FieldImpressions,
			models.FieldCTR, models.FieldPosition,
		},
	}
}
