package sqlgen

// Dialect identifies the target SQL engine. Each dialect has its own
// identifier-quoting and boolean-literal conventions.
type Dialect string

const (
	MySQL     Dialect = "mysql"
	Postgres  Dialect = "postgresql"
	SQLite    Dialect = "sqlite"
	SQLServer Dialect = "sqlserver"
)

// Dialects lists every supported dialect, in display order.
var Dialects = []Dialect{MySQL, Postgres, SQLite, SQLServer}

// Valid reports whether d is one of the supported dialects.
func (d Dialect) Valid() bool {
	switch d {
	case MySQL, Postgres, SQLite, SQLServer:
		return true
	}
	return false
}

// boolLiteral renders a boolean for the dialect. PostgreSQL has a real
// boolean type; the others take 1/0.
func (d Dialect) boolLiteral(b bool) string {
	if d == Postgres {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	if b {
		return "1"
	}
	return "0"
}
