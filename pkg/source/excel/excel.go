package excel

import (
	"errors"
	"fmt"

	xlsx "github.com/tealeg/xlsx"

	"github.com/user/sheetsql"
)

// Workbook reads .xlsx files from the local filesystem and exposes them as
// sheets of raw cell values. The whole file is materialized on Open; Rows
// never touches the disk again. .xls (BIFF) is not supported; users should
// convert to .xlsx upstream.
type Workbook struct {
	path   string
	file   *xlsx.File
	logger sheetsql.Logger
}

// Open parses the workbook at path.
func Open(path string) (*Workbook, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	return &Workbook{path: path, file: file}, nil
}

// SetLogger enables structured logging when available.
func (w *Workbook) SetLogger(l sheetsql.Logger) { w.logger = l }

// Sheets returns the sheet names in file order.
func (w *Workbook) Sheets() []string {
	names := make([]string, len(w.file.Sheets))
	for i, sh := range w.file.Sheets {
		names[i] = sh.Name
	}
	return names
}

// Rows returns every row of the named sheet; an empty name selects the first
// sheet. Cells keep their sheet-level type: numbers come back as float64,
// booleans as bool, date-formatted numerics as time.Time, everything else as
// the cell's string form.
func (w *Workbook) Rows(sheet string) ([][]interface{}, error) {
	var sh *xlsx.Sheet
	if sheet == "" {
		sh = w.file.Sheets[0]
	} else {
		found, ok := w.file.Sheet[sheet]
		if !ok {
			return nil, fmt.Errorf("sheet not found: %s", sheet)
		}
		sh = found
	}

	rows := make([][]interface{}, 0, len(sh.Rows))
	for _, row := range sh.Rows {
		cells := make([]interface{}, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = cellValue(c)
		}
		rows = append(rows, cells)
	}

	if w.logger != nil {
		w.logger.Debug("excel: sheet read", "file", w.path, "sheet", sh.Name, "rows", len(rows))
	}
	return rows, nil
}

func (w *Workbook) Close() error { return nil }

// cellValue extracts a typed value from a cell, falling back to its string
// form whenever the typed accessor fails.
func cellValue(c *xlsx.Cell) interface{} {
	switch c.Type() {
	case xlsx.CellTypeBool:
		return c.Bool()
	case xlsx.CellTypeDate:
		if t, err := c.GetTime(false); err == nil {
			return t
		}
		return c.String()
	case xlsx.CellTypeNumeric:
		if c.IsTime() {
			if t, err := c.GetTime(false); err == nil {
				return t
			}
		}
		if f, err := c.Float(); err == nil {
			return f
		}
		return c.String()
	default:
		return c.String()
	}
}
