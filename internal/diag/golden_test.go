package diag

import (
	"testing"

	"cedar/internal/source"
)

func TestGolden(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	schema := fs.Add("/workspace/testdata/api.cedar", []byte("record A {\n  b B\n}\n"), 0)

	bag := NewBag(8)
	bag.Add(NewError(SemaUnknownType, source.Span{File: schema, Start: 15, End: 16}, "unknown type 'B'").
		WithNote(source.Span{File: schema, Start: 7, End: 8}, "in record\n'A'"))
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: schema, Start: 0, End: 6}, "first"))
	// файла с таким ID нет - строка пропускается
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 42}, "lost"))

	want := "error SYN2001 testdata/api.cedar:1:1 first\n" +
		"error SEM3001 testdata/api.cedar:2:5 unknown type 'B'\n" +
		"  note testdata/api.cedar:1:8 in record 'A'"
	if got := Golden(bag, fs); got != want {
		t.Fatalf("unexpected golden output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if got := Golden(NewBag(1), fs); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Golden(nil, fs); got != "" {
		t.Fatalf("expected empty output for nil bag, got %q", got)
	}
}

func TestSeverityNames(t *testing.T) {
	if SevError.String() != "ERROR" || SevWarning.Label() != "warning" {
		t.Fatalf("unexpected names: %s %s", SevError, SevWarning.Label())
	}
	if Severity(9).Label() != "unknown" {
		t.Fatalf("out of range severity must be unknown")
	}
}
