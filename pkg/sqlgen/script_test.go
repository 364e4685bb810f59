package sqlgen

import (
	"strings"
	"testing"
)

func twoRowFixture() ([]Row, []Column) {
	rows := []Row{
		{Number(1), String("Ann")},
		{Number(2), String("Bea")},
	}
	cols := []Column{
		{SourceIndex: 0, SourceName: "id", TargetName: "id", Include: true},
		{SourceIndex: 1, SourceName: "name", TargetName: "name", Include: true},
	}
	return rows, cols
}

func TestBuildInsertScriptBatchOfOne(t *testing.T) {
	rows, cols := twoRowFixture()
	opts := Options{
		Dialect:           SQLite,
		TableName:         "t",
		RowsPerInsert:     1,
		IncludeColumnList: true,
	}
	script := BuildInsertScript(rows, cols, nil, opts)

	if n := strings.Count(script, "INSERT INTO `t` (`id`, `name`) VALUES"); n != 2 {
		t.Fatalf("want 2 INSERT statements, got %d in:\n%s", n, script)
	}
	if !strings.Contains(script, "(1, 'Ann')") || !strings.Contains(script, "(2, 'Bea')") {
		t.Errorf("missing tuples in:\n%s", script)
	}
	if !strings.Contains(script, "-- Dialect: sqlite, rows: 2") {
		t.Errorf("missing header comment in:\n%s", script)
	}
}

func TestBuildInsertScriptSingleBatch(t *testing.T) {
	rows, cols := twoRowFixture()
	opts := Options{Dialect: MySQL, TableName: "t", RowsPerInsert: 100, IncludeColumnList: true}
	script := BuildInsertScript(rows, cols, nil, opts)

	if n := strings.Count(script, "INSERT INTO"); n != 1 {
		t.Fatalf("want 1 INSERT statement, got %d", n)
	}
	if !strings.Contains(script, "(1, 'Ann'),\n(2, 'Bea');") {
		t.Errorf("tuples not joined into one statement:\n%s", script)
	}
}

func TestBuildInsertScriptZeroBatchSizeMeansOne(t *testing.T) {
	rows, cols := twoRowFixture()
	opts := Options{Dialect: MySQL, TableName: "t", IncludeColumnList: true}
	script := BuildInsertScript(rows, cols, nil, opts)
	if n := strings.Count(script, "INSERT INTO"); n != 2 {
		t.Errorf("batch size 0 should clamp to 1, got %d statements", n)
	}
}

func TestBuildInsertScriptEmptyTableName(t *testing.T) {
	rows, cols := twoRowFixture()
	for _, name := range []string{"", "   ", "\t"} {
		opts := Options{Dialect: Postgres, TableName: name, IncludeColumnList: true}
		if got := BuildInsertScript(rows, cols, nil, opts); got != "" {
			t.Errorf("table name %q: want empty result, got %q", name, got)
		}
	}
}

func TestBuildInsertScriptNoColumns(t *testing.T) {
	rows, _ := twoRowFixture()
	opts := Options{Dialect: Postgres, TableName: "t"}

	if got := BuildInsertScript(rows, nil, nil, opts); got != "" {
		t.Errorf("no columns: want empty, got %q", got)
	}

	excluded := []Column{
		{SourceIndex: 0, TargetName: "id", Include: false},
		{SourceIndex: 1, TargetName: "   ", Include: true},
	}
	if got := BuildInsertScript(rows, excluded, nil, opts); got != "" {
		t.Errorf("all columns excluded: want empty, got %q", got)
	}
}

func TestBuildInsertScriptBlankRowsDropped(t *testing.T) {
	rows := []Row{
		{Number(1), String("Ann")},
		{Null(), String("   ")},
		{String(""), Null()},
	}
	_, cols := twoRowFixture()
	opts := Options{Dialect: MySQL, TableName: "t", RowsPerInsert: 10, IncludeColumnList: true}
	script := BuildInsertScript(rows, cols, nil, opts)

	if !strings.Contains(script, "rows: 1") {
		t.Errorf("blank rows should not count, got:\n%s", script)
	}
	if n := strings.Count(script, "("); n != 2 { // one column list + one tuple
		t.Errorf("blank rows should not emit tuples:\n%s", script)
	}

	allBlank := []Row{{Null(), String(" ")}}
	if got := BuildInsertScript(allBlank, cols, nil, opts); got != "" {
		t.Errorf("all rows blank: want empty, got %q", got)
	}
}

func TestBuildInsertScriptSchemaQualification(t *testing.T) {
	rows, cols := twoRowFixture()
	opts := Options{
		Dialect:           SQLServer,
		TableName:         "people",
		SchemaName:        "dbo",
		RowsPerInsert:     10,
		IncludeColumnList: true,
	}
	script := BuildInsertScript(rows, cols, nil, opts)
	if !strings.Contains(script, "INSERT INTO [dbo].[people] ([id], [name]) VALUES") {
		t.Errorf("missing schema-qualified table ref:\n%s", script)
	}
}

func TestBuildInsertScriptExtraColumns(t *testing.T) {
	rows, cols := twoRowFixture()
	extras := []ExtraColumn{
		{ID: "x", TargetName: "created_at", Include: true, Mode: ExtraSQL, Value: "NOW()"},
	}
	// Column list deliberately off: extras force it back on.
	opts := Options{Dialect: Postgres, TableName: "t", RowsPerInsert: 10}
	script := BuildInsertScript(rows, cols, extras, opts)

	if !strings.Contains(script, `INSERT INTO "t" ("id", "name", "created_at") VALUES`) {
		t.Errorf("extras must force a column list:\n%s", script)
	}
	if !strings.Contains(script, "(1, 'Ann', NOW()),") || !strings.Contains(script, "(2, 'Bea', NOW());") {
		t.Errorf("NOW() should append to every tuple:\n%s", script)
	}
}

func TestBuildInsertScriptNoColumnList(t *testing.T) {
	rows, cols := twoRowFixture()
	opts := Options{Dialect: MySQL, TableName: "t", RowsPerInsert: 10}
	script := BuildInsertScript(rows, cols, nil, opts)
	if !strings.Contains(script, "INSERT INTO `t` VALUES\n") {
		t.Errorf("column list should be omitted:\n%s", script)
	}
}

func TestBuildInsertScriptShortRowPadsWithNull(t *testing.T) {
	rows := []Row{{Number(1)}}
	_, cols := twoRowFixture()
	opts := Options{Dialect: MySQL, TableName: "t", RowsPerInsert: 10, IncludeColumnList: true}
	script := BuildInsertScript(rows, cols, nil, opts)
	if !strings.Contains(script, "(1, NULL);") {
		t.Errorf("missing cell should encode as NULL:\n%s", script)
	}
}
