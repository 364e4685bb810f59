package sqlgen

import (
	"math"
	"strconv"
	"strings"
)

// Options controls how a script is generated. The zero value is usable:
// strings pass through untrimmed, empties stay empty strings, and rows are
// batched one per statement.
type Options struct {
	Dialect           Dialect
	TableName         string
	SchemaName        string
	RowsPerInsert     int
	IncludeColumnList bool
	TrimStrings       bool
	EmptyStringAsNull bool
	// NullTokens are matched case-insensitively against string cells;
	// a match becomes NULL.
	NullTokens []string
}

// nullTokenSet lowercases the configured null tokens for lookup.
func (o Options) nullTokenSet() map[string]struct{} {
	if len(o.NullTokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(o.NullTokens))
	for _, tok := range o.NullTokens {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// EncodeLiteral renders a single cell as a dialect-correct SQL literal.
// Invalid or degenerate values never error; they fall back to NULL.
func EncodeLiteral(v Value, opts Options) string {
	return newEncoder(opts).literal(v)
}

// encoder caches the derived null-token set so per-cell encoding stays cheap
// across a whole sheet.
type encoder struct {
	opts   Options
	tokens map[string]struct{}
}

func newEncoder(opts Options) *encoder {
	return &encoder{opts: opts, tokens: opts.nullTokenSet()}
}

func (e *encoder) literal(v Value) string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindDate:
		return "'" + v.t.UTC().Format("2006-01-02 15:04:05") + "'"
	case KindNumber:
		return numberLiteral(v.num)
	case KindBool:
		return e.opts.Dialect.boolLiteral(v.b)
	default:
		return e.stringLiteral(v.str)
	}
}

// stringLiteral applies the configured trimming and null rules, then quotes.
func (e *encoder) stringLiteral(s string) string {
	if e.opts.TrimStrings {
		s = strings.TrimSpace(s)
	}
	if s == "" && e.opts.EmptyStringAsNull {
		return "NULL"
	}
	if _, ok := e.tokens[strings.ToLower(s)]; ok {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// numberLiteral renders a finite number in plain decimal form; NaN and the
// infinities have no SQL literal and become NULL.
func numberLiteral(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "NULL"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
