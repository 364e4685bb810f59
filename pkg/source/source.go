package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/sheetsql"
	"github.com/user/sheetsql/pkg/source/csv"
	"github.com/user/sheetsql/pkg/source/excel"
)

// Open picks a workbook reader by file extension: .xlsx opens as Excel,
// anything else as delimited text. A .tsv file defaults to a tab delimiter
// when none is given.
func Open(path string, delimiter rune) (sheetsql.Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return excel.Open(path)
	case ".xls":
		return nil, fmt.Errorf("legacy .xls is not supported, convert to .xlsx: %s", path)
	case ".tsv":
		if delimiter == 0 {
			delimiter = '\t'
		}
		return csv.Open(path, delimiter)
	default:
		return csv.Open(path, delimiter)
	}
}
