package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/sheetsql/pkg/sqlgen"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeTemp(t, "job.yaml", `
generator:
  dialect: postgresql
  table: people
  schema: public
  rows_per_insert: 50
  null_tokens: ["null", "n/a"]
columns:
  - source_index: 0
    source_name: id
    target_name: person_id
    include: true
extra_columns:
  - target_name: created_by
    include: true
    mode: text
    value: importer
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Generator.Dialect != "postgresql" || cfg.Generator.Table != "people" {
		t.Errorf("unexpected generator config: %+v", cfg.Generator)
	}
	if cfg.Generator.RowsPerInsert != 50 {
		t.Errorf("rows_per_insert = %d, want 50", cfg.Generator.RowsPerInsert)
	}
	if len(cfg.Columns) != 1 || cfg.Columns[0].TargetName != "person_id" {
		t.Errorf("unexpected columns: %+v", cfg.Columns)
	}
	if len(cfg.ExtraColumns) != 1 || cfg.ExtraColumns[0].ID == "" {
		t.Errorf("extra column should get an id assigned: %+v", cfg.ExtraColumns)
	}
}

func TestLoadConfigJSONFallback(t *testing.T) {
	path := writeTemp(t, "job.json", `{"generator":{"dialect":"sqlite","table":"t","has_header":true,"rows_per_insert":10,"include_column_list":true}}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Generator.Dialect != "sqlite" || cfg.Generator.RowsPerInsert != 10 {
		t.Errorf("unexpected config: %+v", cfg.Generator)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGeneratorOptions(t *testing.T) {
	g := GeneratorConfig{
		Dialect:           "postgresql",
		Table:             "t",
		Schema:            "s",
		RowsPerInsert:     25,
		IncludeColumnList: true,
		TrimStrings:       true,
		NullTokens:        []string{"n/a"},
	}
	opts, err := g.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Dialect != sqlgen.Postgres || opts.TableName != "t" || opts.RowsPerInsert != 25 {
		t.Errorf("unexpected options: %+v", opts)
	}

	g.Dialect = "oracle"
	if _, err := g.Options(); err == nil {
		t.Error("expected error for unsupported dialect")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Generator.Dialect != "mysql" || !cfg.Generator.HasHeader || cfg.Generator.RowsPerInsert != 100 {
		t.Errorf("unexpected defaults: %+v", cfg.Generator)
	}
}

func TestDelimiterRune(t *testing.T) {
	if r := (GeneratorConfig{Delimiter: ";"}).DelimiterRune(); r != ';' {
		t.Errorf("got %q", r)
	}
	if r := (GeneratorConfig{}).DelimiterRune(); r != 0 {
		t.Errorf("unset delimiter should be zero, got %q", r)
	}
}
