package diag

import "strings"

// Severity - важность диагностики. Ядро cedar выдаёт только ошибки,
// остальные уровни нужны репортерам и Bag.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// Label - имя в нижнем регистре, как в golden-выводе.
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

func (s Severity) String() string {
	return strings.ToUpper(s.Label())
}
