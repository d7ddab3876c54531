package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"cedar/internal/source"
)

// Golden печатает содержимое Bag построчно в стабильном виде для тестов:
//
//	error SEM3001 schema.cedar:2:5 unknown type 'B'
//	  note schema.cedar:1:8 declared here
//
// Колонки 1-based. Bag сортируется на месте; диагностики без файла в fs пропускаются.
func Golden(bag *Bag, fs *source.FileSet) string {
	if bag == nil || fs == nil || bag.Len() == 0 {
		return ""
	}
	bag.Sort()

	var lines []string
	for _, d := range bag.Items() {
		loc, ok := goldenLocation(fs, d.Primary)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s", d.Severity.Label(), d.Code.ID(), loc, oneLine(d.Message)))
		for _, n := range d.Notes {
			if nloc, ok := goldenLocation(fs, n.Span); ok {
				lines = append(lines, fmt.Sprintf("  note %s %s", nloc, oneLine(n.Msg)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func goldenLocation(fs *source.FileSet, span source.Span) (string, bool) {
	if int(span.File) >= fs.Len() {
		return "", false
	}
	path := fs.Get(span.File).FormatPath("relative", fs.BaseDir())
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col), true
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(msg), " "))
}
