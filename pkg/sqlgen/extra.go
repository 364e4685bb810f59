package sqlgen

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExtraMode selects how an extra column's raw value string is encoded.
type ExtraMode string

const (
	ExtraText   ExtraMode = "text"
	ExtraNumber ExtraMode = "number"
	ExtraBool   ExtraMode = "boolean"
	ExtraNull   ExtraMode = "null"
	ExtraSQL    ExtraMode = "sql"
)

// trueTokens are the accepted spellings of "true" for boolean extra columns.
// Anything else is false.
var trueTokens = map[string]struct{}{
	"true": {}, "1": {}, "yes": {}, "y": {}, "on": {},
}

// ExtraColumn is a synthetic column appended to every generated row. It has
// no source position; its single Value string is encoded once per Mode and
// repeated for each row.
type ExtraColumn struct {
	ID         string    `json:"id" yaml:"id"`
	TargetName string    `json:"target_name" yaml:"target_name"`
	Include    bool      `json:"include" yaml:"include"`
	Mode       ExtraMode `json:"mode" yaml:"mode"`
	Value      string    `json:"value" yaml:"value"`
}

// EncodeExtra renders the extra column's value as an SQL literal or, in sql
// mode, as a raw expression. sql mode is a deliberate passthrough: the value
// is the user's own SQL and is not escaped or validated.
func EncodeExtra(c ExtraColumn, opts Options) string {
	return newEncoder(opts).extra(c)
}

func (e *encoder) extra(c ExtraColumn) string {
	switch c.Mode {
	case ExtraNull:
		return "NULL"
	case ExtraSQL:
		raw := strings.TrimSpace(c.Value)
		if raw == "" {
			return "NULL"
		}
		return raw
	case ExtraNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil {
			return "NULL"
		}
		return numberLiteral(f)
	case ExtraBool:
		_, ok := trueTokens[strings.ToLower(strings.TrimSpace(c.Value))]
		return e.opts.Dialect.boolLiteral(ok)
	default:
		// text, and any unknown mode
		return e.stringLiteral(c.Value)
	}
}

// ParseExtraColumns parses a JSON array of extra-column definitions.
func ParseExtraColumns(s string) ([]ExtraColumn, error) {
	var cols []ExtraColumn
	if s == "" {
		return cols, nil
	}
	err := json.Unmarshal([]byte(s), &cols)
	return cols, err
}
