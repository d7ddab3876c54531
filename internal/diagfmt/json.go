package diagfmt

import (
	"encoding/json"
	"io"

	"cedar/internal/diag"
)

// LocationJSON представляет местоположение в файле для JSON.
// Line is 1-based, Column is 0-based in code points.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
	Column    uint32 `json:"column"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Phase    string       `json:"phase"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(errs []*diag.Error, opts JSONOpts) DiagnosticsOutput {
	n := len(errs)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, n), Count: n}
	for _, e := range errs[:n] {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: diag.SevError.String(),
			Code:     e.Code.ID(),
			Phase:    e.Phase().String(),
			Message:  e.Message,
			Location: LocationJSON{
				File:      displayPath(e.File, opts.PathMode, opts.BaseDir),
				StartByte: e.Span.Start,
				EndByte:   e.Span.End,
				Line:      e.Line,
				Column:    e.Column,
			},
		})
	}
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, errs []*diag.Error, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(errs, opts))
}
