package diagfmt

import (
	"fmt"
	"io"

	"cedar/internal/diag"
)

// Short печатает по строке на ошибку: path:line:col: CODE message.
// Колонка 1-based, как ждут редакторы.
func Short(w io.Writer, errs []*diag.Error, mode PathMode, baseDir string) error {
	for _, e := range errs {
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
			displayPath(e.File, mode, baseDir), e.Line, e.Column+1, e.Code.ID(), e.Message)
		if err != nil {
			return err
		}
	}
	return nil
}
