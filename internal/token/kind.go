package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwRecord represents the 'record' keyword.
	KwRecord // record
	// KwFn represents the 'fn' keyword.
	KwFn // fn

	// Name is a lowercase identifier: attribute, parameter or function name.
	Name
	// CapName is a capitalized identifier: a type name or an enum tag.
	CapName

	Question // ?
	Comma    // ,
	Colon    // :
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	// Newline is significant: record attributes and declarations end with one.
	Newline
)

var kindNames = [...]string{
	Invalid:  "invalid",
	EOF:      "end of file",
	KwEnum:   "'enum'",
	KwUnion:  "'union'",
	KwRecord: "'record'",
	KwFn:     "'fn'",
	Name:     "name",
	CapName:  "type name",
	Question: "'?'",
	Comma:    "','",
	Colon:    "':'",
	LParen:   "'('",
	RParen:   "')'",
	LBrace:   "'{'",
	RBrace:   "'}'",
	LBracket: "'['",
	RBracket: "']'",
	Newline:  "newline",
}

// String returns the human-readable kind used in diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwEnum && k <= KwFn
}

// IsPunct reports whether the kind is a single-character punctuation mark.
func (k Kind) IsPunct() bool {
	return k >= Question && k <= RBracket
}
