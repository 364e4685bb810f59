package sqlgen

import "testing"

func TestNormalizeIdent(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"   ":           "",
		"name":          "name",
		"  name  ":      "name",
		"first name":    "first_name",
		"a \t b\n c":    "a_b_c",
		"already_clean": "already_clean",
	}
	for in, want := range cases {
		if got := NormalizeIdent(in); got != want {
			t.Errorf("NormalizeIdent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQuoteIdentPerDialect(t *testing.T) {
	cases := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{MySQL, "users", "`users`"},
		{SQLite, "users", "`users`"},
		{Postgres, "users", `"users"`},
		{SQLServer, "users", "[users]"},
		{MySQL, "back`tick", "`back``tick`"},
		{Postgres, `dou"ble`, `"dou""ble"`},
		{SQLServer, "brack]et", "[brack]]et]"},
	}
	for _, c := range cases {
		if got := QuoteIdent(c.dialect, c.in); got != c.want {
			t.Errorf("QuoteIdent(%s, %q) = %q, want %q", c.dialect, c.in, got, c.want)
		}
	}
}

func TestQuoteIdentCollapsesWhitespace(t *testing.T) {
	for _, d := range Dialects {
		got := QuoteIdent(d, "a b")
		want := map[Dialect]string{
			MySQL:     "`a_b`",
			SQLite:    "`a_b`",
			Postgres:  `"a_b"`,
			SQLServer: "[a_b]",
		}[d]
		if got != want {
			t.Errorf("QuoteIdent(%s, \"a b\") = %q, want %q", d, got, want)
		}
	}
}

func TestQuoteIdentEmpty(t *testing.T) {
	for _, d := range Dialects {
		if got := QuoteIdent(d, ""); got != "" {
			t.Errorf("QuoteIdent(%s, \"\") = %q, want empty", d, got)
		}
		if got := QuoteIdent(d, "  \t "); got != "" {
			t.Errorf("QuoteIdent(%s, whitespace) = %q, want empty", d, got)
		}
	}
}
