package sheetsql

// Workbook represents parsed tabular input: a set of named sheets, each a
// sequence of rows of raw cell values. Implementations materialize the whole
// file up front; the generator never touches the filesystem itself.
//
// Cell values are untyped (string, float64, bool, time.Time or nil); the
// generator coerces them into its closed value set.
type Workbook interface {
	// Sheets returns the sheet names in file order.
	Sheets() []string
	// Rows returns all rows of the named sheet, including the header row
	// (row 0) when the file has one.
	Rows(sheet string) ([][]interface{}, error)
	Close() error
}

// Logger defines the interface for logging in sheetsql.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
