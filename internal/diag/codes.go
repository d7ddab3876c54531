package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectUnionMember  Code = 2003
	SynExpectNewline      Code = 2004
	SynExpectType         Code = 2005

	// Семантические
	SemaInfo               Code = 3000
	SemaUnknownType        Code = 3001
	SemaRedeclaredType     Code = 3002
	SemaRedeclaredFunction Code = 3003
	SemaDictKeyNotString   Code = 3004

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Проект
	ProjInfo             Code = 5000
	ProjManifestInvalid  Code = 5001
	ProjUnknownGenerator Code = 5002
	ProjNotRoundTrip     Code = 5003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unknown character",
		SynInfo:                "Syntax information",
		SynUnexpectedToken:     "Unexpected token",
		SynUnexpectedTopLevel:  "Unexpected top-level token",
		SynExpectUnionMember:   "Union requires at least one member",
		SynExpectNewline:       "Expected end of line",
		SynExpectType:          "Expected a type",
		SemaInfo:               "Semantic information",
		SemaUnknownType:        "Unknown type",
		SemaRedeclaredType:     "Type redeclared",
		SemaRedeclaredFunction: "Function redeclared",
		SemaDictKeyNotString:   "Dict key is not String",
		IOLoadFileError:        "I/O load file error",
		IOWriteFileError:       "I/O write file error",
		ProjInfo:               "Project information",
		ProjManifestInvalid:    "Invalid cedar.toml",
		ProjUnknownGenerator:   "Unknown generator",
		ProjNotRoundTrip:       "Formatted output does not round-trip",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Phase classifies the code by the pipeline stage that produces it.
func (c Code) Phase() Phase {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return PhaseLex
	case ic >= 2000 && ic < 3000:
		return PhaseSyntax
	case ic >= 3000 && ic < 4000:
		return PhaseSemantic
	case ic >= 4000 && ic < 5000:
		return PhaseIO
	case ic >= 5000 && ic < 6000:
		return PhaseProject
	}
	return PhaseUnknown
}

// Phase is the producing stage of a diagnostic.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseLex
	PhaseSyntax
	PhaseSemantic
	PhaseIO
	PhaseProject
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lexical"
	case PhaseSyntax:
		return "syntax"
	case PhaseSemantic:
		return "semantic"
	case PhaseIO:
		return "io"
	case PhaseProject:
		return "project"
	}
	return "unknown"
}

// Halting reports whether errors of this phase stop the parse immediately.
func (p Phase) Halting() bool {
	return p == PhaseLex || p == PhaseSyntax
}
