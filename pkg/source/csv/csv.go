package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/sheetsql"
)

// Workbook reads a CSV file as a workbook with a single sheet named after
// the file's base name. The file is parsed eagerly on Open; ragged rows are
// allowed and every cell is a string.
type Workbook struct {
	path      string
	sheetName string
	rows      [][]interface{}
	logger    sheetsql.Logger
}

// Open parses the CSV file at path. A zero delimiter means comma.
func Open(path string, delimiter rune) (*Workbook, error) {
	if delimiter == 0 {
		delimiter = ','
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		cells := make([]interface{}, len(rec))
		for j, v := range rec {
			cells[j] = v
		}
		rows[i] = cells
	}

	base := filepath.Base(path)
	return &Workbook{
		path:      path,
		sheetName: strings.TrimSuffix(base, filepath.Ext(base)),
		rows:      rows,
	}, nil
}

// SetLogger enables structured logging when available.
func (w *Workbook) SetLogger(l sheetsql.Logger) { w.logger = l }

// Sheets returns the single sheet name derived from the file name.
func (w *Workbook) Sheets() []string { return []string{w.sheetName} }

// Rows returns all rows; an empty name selects the only sheet.
func (w *Workbook) Rows(sheet string) ([][]interface{}, error) {
	if sheet != "" && sheet != w.sheetName {
		return nil, fmt.Errorf("sheet not found: %s", sheet)
	}
	if w.logger != nil {
		w.logger.Debug("csv: sheet read", "file", w.path, "rows", len(w.rows))
	}
	return w.rows, nil
}

func (w *Workbook) Close() error { return nil }
