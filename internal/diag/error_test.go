package diag_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/diag"
	"cedar/internal/source"
)

func testFile(t *testing.T, name, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(content)))
}

func TestErrorMessage(t *testing.T) {
	f := testFile(t, "api.cedar", "enum A {B, C,,}")
	err := diag.NewErrorAt(f, diag.SynUnexpectedToken, source.Span{Start: 13, End: 14}, 1, 13, "expected type name, found ','")

	assert.Equal(t, "api.cedar:1:14: expected type name, found ','", err.Error())
	assert.Equal(t, "api.cedar", err.FileName())
	assert.Equal(t, "enum A {B, C,,}", err.Source())
	assert.Equal(t, diag.PhaseSyntax, err.Phase())
	assert.True(t, err.Phase().Halting())
}

func TestErrorWithoutFile(t *testing.T) {
	err := &diag.Error{Code: diag.LexUnknownChar, Message: "unexpected '!'", Line: 1}
	assert.Equal(t, source.DefaultName, err.FileName())
	assert.Empty(t, err.Source())
	assert.Equal(t, diag.PhaseLex, err.Phase())
}

func TestErrorsCollect(t *testing.T) {
	f := testFile(t, "api.cedar", "record A { b B }")
	errs := diag.Errors{
		diag.NewErrorAt(f, diag.SemaUnknownType, source.Span{}, 1, 13, "unknown type 'B'"),
		diag.NewErrorAt(f, diag.SemaRedeclaredType, source.Span{}, 2, 7, "cannot redeclare type 'A'"),
	}

	var err error = errs
	collected := diag.Collect(err)
	require.Len(t, collected, 2)
	assert.Equal(t, diag.PhaseSemantic, collected[0].Phase())
	assert.False(t, collected[0].Phase().Halting())
	assert.Contains(t, err.Error(), "unknown type 'B'")
	assert.Contains(t, err.Error(), "cannot redeclare type 'A'")

	wrapped := fmt.Errorf("checking: %w", errs[1])
	single := diag.Collect(wrapped)
	require.Len(t, single, 1)
	assert.Same(t, errs[1], single[0])

	assert.Nil(t, diag.Collect(nil))
	assert.Nil(t, diag.Collect(fmt.Errorf("plain")))
}

func TestReportIntoBag(t *testing.T) {
	f := testFile(t, "api.cedar", "x")
	bag := diag.NewBag(10)
	err := diag.Errors{
		diag.NewErrorAt(f, diag.SemaUnknownType, source.Span{Start: 3}, 1, 3, "unknown type 'X'"),
	}
	require.True(t, diag.Report(diag.BagReporter{Bag: bag}, err))
	require.Equal(t, 1, bag.Len())
	assert.True(t, bag.HasErrors())
	assert.Equal(t, diag.SemaUnknownType, bag.Items()[0].Code)

	assert.False(t, diag.Report(diag.NopReporter{}, nil))
}

func TestCodeIDs(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexUnknownChar:       "LEX1001",
		diag.SynExpectUnionMember: "SYN2003",
		diag.SemaDictKeyNotString: "SEM3004",
		diag.IOLoadFileError:      "IO4001",
		diag.ProjManifestInvalid:  "PRJ5001",
		diag.UnknownCode:          "E0000",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.ID())
	}
	assert.Equal(t, "[SEM3001]: Unknown type", diag.SemaUnknownType.String())
	assert.Equal(t, "Unknown error", diag.Code(9999).Title())
}
