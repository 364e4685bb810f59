package sqlgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Column maps one source column to a target column. SourceIndex is the
// position in the row; TargetName is the emitted column name. A column with
// Include=false, or whose target normalizes to empty, is left out of the
// generated script.
type Column struct {
	SourceIndex int    `json:"source_index" yaml:"source_index"`
	SourceName  string `json:"source_name" yaml:"source_name"`
	TargetName  string `json:"target_name" yaml:"target_name"`
	Include     bool   `json:"include" yaml:"include"`
}

// InferColumns derives one Column per source column, sized by the widest row.
// With a header row, row 0 supplies the names; blank header cells (and every
// column when there is no header) fall back to column_N, 1-based.
func InferColumns(rows []Row, hasHeaderRow bool) []Column {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil
	}

	var header Row
	if hasHeaderRow && len(rows) > 0 {
		header = rows[0]
	}

	cols := make([]Column, 0, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i].Text())
		}
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		cols = append(cols, Column{
			SourceIndex: i,
			SourceName:  name,
			TargetName:  name,
			Include:     true,
		})
	}
	return cols
}

// ParseColumns parses a JSON array of column mappings, as supplied on the
// command line or stored in a job file.
func ParseColumns(s string) ([]Column, error) {
	var cols []Column
	if s == "" {
		return cols, nil
	}
	err := json.Unmarshal([]byte(s), &cols)
	return cols, err
}
