package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the closed set of cell value types the generator accepts.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

// Value is a single spreadsheet cell, reduced to the generator's closed
// variant set: null, string, number, boolean or date. No other types exist;
// anything else is coerced on the way in.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// Row is an ordered sequence of cells; the index is the source column.
type Row []Value

// Null returns the null cell value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string cell value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric cell value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean cell value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Date returns a date cell value.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// isBlank reports whether the cell carries no content at all: null, or a
// string that is empty after trimming. Used by the blank-row filter.
func (v Value) isBlank() bool {
	if v.IsNull() {
		return true
	}
	return v.kind == KindString && strings.TrimSpace(v.str) == ""
}

// Text returns the display form of the value, used when a header cell names
// a column. Null renders as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.UTC().Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// FromAny coerces a raw workbook cell into a Value. Numeric Go types collapse
// to float64; anything outside the closed set is stringified.
func FromAny(raw interface{}) Value {
	switch c := raw.(type) {
	case nil:
		return Null()
	case Value:
		return c
	case string:
		return String(c)
	case bool:
		return Bool(c)
	case float64:
		return Number(c)
	case float32:
		return Number(float64(c))
	case int:
		return Number(float64(c))
	case int8:
		return Number(float64(c))
	case int16:
		return Number(float64(c))
	case int32:
		return Number(float64(c))
	case int64:
		return Number(float64(c))
	case uint:
		return Number(float64(c))
	case uint8:
		return Number(float64(c))
	case uint16:
		return Number(float64(c))
	case uint32:
		return Number(float64(c))
	case uint64:
		return Number(float64(c))
	case time.Time:
		return Date(c)
	default:
		return String(fmt.Sprintf("%v", c))
	}
}

// RowFromAny coerces a slice of raw cells into a Row.
func RowFromAny(cells []interface{}) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		row[i] = FromAny(c)
	}
	return row
}

// RowsFromAny coerces a whole sheet of raw cells into rows.
func RowsFromAny(sheet [][]interface{}) []Row {
	rows := make([]Row, len(sheet))
	for i, cells := range sheet {
		rows[i] = RowFromAny(cells)
	}
	return rows
}
