package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cedar/internal/diag"
	"cedar/internal/parser"
)

func parseErrors(t *testing.T, name, src string) []*diag.Error {
	t.Helper()
	_, err := parser.ParseString(name, src, parser.Options{})
	errs := diag.Collect(err)
	if len(errs) == 0 {
		t.Fatalf("expected errors for %q, got %v", src, err)
	}
	return errs
}

func render(t *testing.T, errs []*diag.Error, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, errs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	return buf.String()
}

func TestPrettyTypeError(t *testing.T) {
	errs := parseErrors(t, "schema.cedar", "record A {\n  b B\n}")
	want := "Type error in schema.cedar:\n\n" +
		"1| record A {\n" +
		"2|   b B\n" +
		"-------^\n\n" +
		"unknown type 'B'\n"
	if got := render(t, errs, PrettyOpts{}); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyParseError(t *testing.T) {
	errs := parseErrors(t, "", "record A {\n\tb B\n}")
	want := "Parse error in [STRING]:\n\n" +
		"1| record A {\n" +
		"2| \tb B\n" +
		"---^\n\n" +
		"unexpected '\\t'\n"
	if got := render(t, errs, PrettyOpts{}); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

// TestPrettyContext проверяет, что показываются только последние пять строк
func TestPrettyContext(t *testing.T) {
	src := "record A {}\nrecord B {}\nrecord C {}\nrecord D {}\nrecord E {}\nrecord F {}\nrecord G { h H }"
	errs := parseErrors(t, "ctx.cedar", src)
	got := render(t, errs, PrettyOpts{})

	want := "Type error in ctx.cedar:\n\n" +
		"3| record C {}\n" +
		"4| record D {}\n" +
		"5| record E {}\n" +
		"6| record F {}\n" +
		"7| record G { h H }\n" +
		strings.Repeat("-", 16) + "^\n\n" +
		"unknown type 'H'\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	short := render(t, errs, PrettyOpts{Context: 2})
	if strings.Contains(short, "5| ") || !strings.Contains(short, "6| record F {}") {
		t.Errorf("context 2 should show lines 6-7:\n%s", short)
	}
}

func TestPrettyPadding(t *testing.T) {
	src := strings.Repeat("\n", 9) + "record A { b B }"
	errs := parseErrors(t, "pad.cedar", src)
	got := render(t, errs, PrettyOpts{})
	// номера строк выравниваются по ширине номера строки ошибки
	if !strings.Contains(got, " 9| \n10| record A { b B }\n") {
		t.Errorf("unexpected excerpt:\n%s", got)
	}
	if !strings.Contains(got, "\n"+strings.Repeat("-", 13+2+2)+"^\n") {
		t.Errorf("unexpected caret:\n%s", got)
	}
}

func TestPrettyMultiple(t *testing.T) {
	errs := parseErrors(t, "", "union Resource { A, B }\n\nrecord Resource {\n}")
	got := render(t, errs, PrettyOpts{})

	if n := strings.Count(got, "Type error in [STRING]:"); n != 3 {
		t.Fatalf("expected 3 reports, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, "unknown type 'A'\n\n\nType error") {
		t.Errorf("reports must be separated by two blank lines:\n%s", got)
	}
	if !strings.HasSuffix(got, "cannot redeclare type 'Resource'\n") {
		t.Errorf("unexpected tail:\n%s", got)
	}
}

func TestPrettyShowCodeAndColor(t *testing.T) {
	errs := parseErrors(t, "schema.cedar", "record A {\n  b B\n}")

	got := render(t, errs, PrettyOpts{ShowCode: true})
	if !strings.HasPrefix(got, "Type error [SEM3001] in schema.cedar:") {
		t.Errorf("missing code in header:\n%s", got)
	}

	colored := render(t, errs, PrettyOpts{Color: true})
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected ANSI escapes:\n%q", colored)
	}
	plain := render(t, errs, PrettyOpts{Color: false})
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("unexpected ANSI escapes:\n%q", plain)
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	e := &diag.Error{Code: diag.SemaUnknownType, Message: "unknown type 'X'", Line: 1}
	want := "Type error in [STRING]:\n\nunknown type 'X'\n"
	if got := render(t, []*diag.Error{e}, PrettyOpts{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCaretOffset(t *testing.T) {
	tests := []struct {
		line string
		col  uint32
		want int
	}{
		{"record A { b B }", 13, 13},
		{"", 0, 0},
		{"日本 x", 3, 5},
		{"é b", 2, 2},
		{"ab", 4, 4},
	}
	for _, tt := range tests {
		if got := caretOffset(tt.line, tt.col); got != tt.want {
			t.Errorf("caretOffset(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestPathModes(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		got, ok := ParsePathMode(m.String())
		if !ok || got != m {
			t.Errorf("ParsePathMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParsePathMode("nope"); ok {
		t.Error("unknown mode accepted")
	}
}
