package sqlgen

import (
	"regexp"
	"strings"
)

var wsRe = regexp.MustCompile(`\s+`)

// NormalizeIdent turns an arbitrary name into a safe identifier token:
// leading/trailing whitespace is removed and internal whitespace runs
// collapse to a single underscore. An empty result means "no identifier";
// callers exclude the column or table.
func NormalizeIdent(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return wsRe.ReplaceAllString(name, "_")
}

// QuoteIdent normalizes and quotes an SQL identifier according to the target
// dialect, doubling any embedded quote characters.
// Dialects: postgresql -> "name", mysql/sqlite -> `name`, sqlserver -> [name].
// An identifier that normalizes to empty stays empty.
func QuoteIdent(d Dialect, name string) string {
	name = NormalizeIdent(name)
	if name == "" {
		return ""
	}
	switch d {
	case SQLServer:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	case MySQL, SQLite:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		// postgresql, and the safe fallback for anything unknown
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}
