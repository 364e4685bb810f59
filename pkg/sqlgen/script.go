package sqlgen

import (
	"fmt"
	"strings"
)

// BuildInsertScript assembles the full INSERT script for the given rows,
// column mappings, extra columns and options. Degenerate input — an empty
// table name, no included columns, or no rows left after the blank-row
// filter — yields the empty string, never an error.
func BuildInsertScript(rows []Row, columns []Column, extras []ExtraColumn, opts Options) string {
	if NormalizeIdent(opts.TableName) == "" {
		return ""
	}

	cols := includedColumns(columns)
	exts := includedExtras(extras)
	if len(cols) == 0 && len(exts) == 0 {
		return ""
	}

	live := dropBlankRows(rows)
	if len(live) == 0 {
		return ""
	}

	tableRef := QuoteIdent(opts.Dialect, opts.TableName)
	if schema := QuoteIdent(opts.Dialect, opts.SchemaName); schema != "" {
		tableRef = schema + "." + tableRef
	}

	// Mapped columns first, extras after, in both the column list and the
	// value tuples.
	names := make([]string, 0, len(cols)+len(exts))
	for _, c := range cols {
		names = append(names, QuoteIdent(opts.Dialect, c.TargetName))
	}
	for _, c := range exts {
		names = append(names, QuoteIdent(opts.Dialect, c.TargetName))
	}
	columnList := strings.Join(names, ", ")

	enc := newEncoder(opts)
	extraLiterals := make([]string, len(exts))
	for i, c := range exts {
		extraLiterals[i] = enc.extra(c)
	}

	tuples := make([]string, len(live))
	for i, row := range live {
		parts := make([]string, 0, len(cols)+len(exts))
		for _, c := range cols {
			cell := Null()
			if c.SourceIndex >= 0 && c.SourceIndex < len(row) {
				cell = row[c.SourceIndex]
			}
			parts = append(parts, enc.literal(cell))
		}
		parts = append(parts, extraLiterals...)
		tuples[i] = "(" + strings.Join(parts, ", ") + ")"
	}

	batchSize := opts.RowsPerInsert
	if batchSize < 1 {
		batchSize = 1
	}

	// Extra columns have no position in the raw table, so their presence
	// forces an explicit column list.
	withList := opts.IncludeColumnList || len(exts) > 0

	parts := []string{fmt.Sprintf("-- Generated by sheetsql\n-- Dialect: %s, rows: %d", opts.Dialect, len(live))}
	for start := 0; start < len(tuples); start += batchSize {
		end := start + batchSize
		if end > len(tuples) {
			end = len(tuples)
		}
		var b strings.Builder
		b.WriteString("INSERT INTO ")
		b.WriteString(tableRef)
		if withList {
			b.WriteString(" (")
			b.WriteString(columnList)
			b.WriteString(")")
		}
		b.WriteString(" VALUES\n")
		b.WriteString(strings.Join(tuples[start:end], ",\n"))
		b.WriteString(";")
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n") + "\n"
}

// includedColumns keeps columns marked for inclusion whose target name
// survives normalization.
func includedColumns(columns []Column) []Column {
	kept := make([]Column, 0, len(columns))
	for _, c := range columns {
		if c.Include && NormalizeIdent(c.TargetName) != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

func includedExtras(extras []ExtraColumn) []ExtraColumn {
	kept := make([]ExtraColumn, 0, len(extras))
	for _, c := range extras {
		if c.Include && NormalizeIdent(c.TargetName) != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

// dropBlankRows removes rows whose every cell is null or whitespace-only.
// This is a blank-row filter, not a validity check: a row with any content
// at all survives.
func dropBlankRows(rows []Row) []Row {
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if !cell.isBlank() {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}
