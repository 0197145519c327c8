package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Canonical column names produced by the normalizer.
const (
	FieldQuery       = "query"
	FieldPage        = "page"
	FieldCountry     = "country"
	FieldDevice      = "device"
	FieldDate        = "date"
	FieldClicks      = "clicks"
	FieldImpressions = "impressions"
	FieldCTR         = "ctr"
	FieldPosition    = "position"
	FieldIsBrand     = "is_brand"
)

// RawRow is one record exactly as read from an export file.
// Keys holds the header order of the source file.
type RawRow struct {
	Keys   []string
	Values map[string]string
}

// NewRawRow builds a RawRow from a header and a record. Missing trailing
// cells become empty strings; surplus cells are ignored.
func NewRawRow(header, record []string) RawRow {
	values := make(map[string]string, len(header))
	for i, key := range header {
		if i < len(record) {
			values[key] = record[i]
		} else {
			values[key] = ""
		}
	}
	return RawRow{Keys: header, Values: values}
}

// Row is a normalized export row. Every bucket shares the metric fields and
// differs only in which dimension column is populated, so one struct carries
// the union; Columns records which canonical columns the source actually had.
type Row struct {
	Query   string
	Page    string
	Country string
	Device  string
	Date    string

	Clicks      int64
	Impressions int64
	CTR         float64
	Position    float64

	// IsBrand is nil until the brand classifier has seen the row.
	IsBrand *bool

	// Extra keeps columns outside the canonical schema, verbatim.
	Extra map[string]string

	Columns []string
}

// Has reports whether the source row carried the given canonical column.
func (r *Row) Has(column string) bool {
	for _, c := range r.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// AddColumn appends column to the column order unless already present.
func (r *Row) AddColumn(column string) {
	if !r.Has(column) {
		r.Columns = append(r.Columns, column)
	}
}

// SetBrand records the brand classification and exposes it as a column.
func (r *Row) SetBrand(isBrand bool) {
	r.IsBrand = &isBrand
	r.AddColumn(FieldIsBrand)
}

// Keys returns the column names in export order.
func (r *Row) Keys() []string {
	keys := make([]string, len(r.Columns))
	copy(keys, r.Columns)
	return keys
}

// Value returns the typed value of a column.
func (r *Row) Value(column string) interface{} {
	switch column {
	case FieldQuery:
		return r.Query
	case FieldPage:
		return r.Page
	case FieldCountry:
		return r.Country
	case FieldDevice:
		return r.Device
	case FieldDate:
		return r.Date
	case FieldClicks:
		return r.Clicks
	case FieldImpressions:
		return r.Impressions
	case FieldCTR:
		return r.CTR
	case FieldPosition:
		return r.Position
	case FieldIsBrand:
		if r.IsBrand == nil {
			return nil
		}
		return *r.IsBrand
	}
	return r.Extra[column]
}

// StringValue renders a column the way a flat CSV export expects it.
func (r *Row) StringValue(column string) string {
	switch v := r.Value(column).(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// MarshalJSON writes the row as an object whose keys follow Columns.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Value(column))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds an ordered mapping node so YAML output keeps Columns order.
func (r *Row) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, column := range r.Columns {
		var val yaml.Node
		if err := val.Encode(r.Value(column)); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: column},
			&val,
		)
	}
	return node, nil
}
