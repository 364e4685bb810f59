package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/user/sheetsql/pkg/sqlgen"
)

// Config is a generation job file: generator options plus optional column
// and extra-column definitions. Columns left out of the file are inferred
// from the sheet instead.
type Config struct {
	Generator    GeneratorConfig      `json:"generator" yaml:"generator"`
	Columns      []sqlgen.Column      `json:"columns" yaml:"columns"`
	ExtraColumns []sqlgen.ExtraColumn `json:"extra_columns" yaml:"extra_columns"`
}

// GeneratorConfig mirrors sqlgen.Options plus the input-side settings the
// generator itself never sees (sheet selection, header row, delimiter).
type GeneratorConfig struct {
	Dialect           string   `json:"dialect" yaml:"dialect"`
	Table             string   `json:"table" yaml:"table"`
	Schema            string   `json:"schema" yaml:"schema"`
	Sheet             string   `json:"sheet" yaml:"sheet"`
	HasHeader         bool     `json:"has_header" yaml:"has_header"`
	RowsPerInsert     int      `json:"rows_per_insert" yaml:"rows_per_insert"`
	IncludeColumnList bool     `json:"include_column_list" yaml:"include_column_list"`
	TrimStrings       bool     `json:"trim_strings" yaml:"trim_strings"`
	EmptyStringAsNull bool     `json:"empty_string_as_null" yaml:"empty_string_as_null"`
	NullTokens        []string `json:"null_tokens" yaml:"null_tokens"`
	Delimiter         string   `json:"delimiter" yaml:"delimiter"`
}

// Default returns the settings a job starts from before the file and flags
// are applied.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			Dialect:           string(sqlgen.MySQL),
			HasHeader:         true,
			RowsPerInsert:     100,
			IncludeColumnList: true,
			TrimStrings:       true,
		},
	}
}

// LoadConfig reads a job file, YAML first with a JSON fallback. Extra
// columns without an id get one assigned.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		// Try JSON if YAML fails
		file.Seek(0, 0)
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file (tried YAML and JSON): %w", err)
		}
	}

	for i := range cfg.ExtraColumns {
		if cfg.ExtraColumns[i].ID == "" {
			cfg.ExtraColumns[i].ID = uuid.NewString()
		}
	}

	return &cfg, nil
}

// Options converts the generator section into sqlgen options, validating
// the dialect.
func (g GeneratorConfig) Options() (sqlgen.Options, error) {
	d := sqlgen.Dialect(g.Dialect)
	if !d.Valid() {
		return sqlgen.Options{}, fmt.Errorf("unsupported dialect: %s", g.Dialect)
	}
	return sqlgen.Options{
		Dialect:           d,
		TableName:         g.Table,
		SchemaName:        g.Schema,
		RowsPerInsert:     g.RowsPerInsert,
		IncludeColumnList: g.IncludeColumnList,
		TrimStrings:       g.TrimStrings,
		EmptyStringAsNull: g.EmptyStringAsNull,
		NullTokens:        g.NullTokens,
	}, nil
}

// DelimiterRune returns the configured CSV delimiter as a rune, zero when
// unset.
func (g GeneratorConfig) DelimiterRune() rune {
	for _, r := range g.Delimiter {
		return r
	}
	return 0
}
