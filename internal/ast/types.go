package ast

// TypeExpr is one of *Named, *List, *Dict, *Nullable.
type TypeExpr interface {
	String() string
	typeNode()
}

// Named references a builtin or declared type.
type Named struct {
	Name string
}

// List is a homogeneous sequence: [T].
type List struct {
	Elem TypeExpr
}

// Dict is a map with string keys: {String: T}. Key keeps the spelling used
// in the source so tools can report it even when the tree was not checked.
type Dict struct {
	Key   *Named
	Value TypeExpr
}

// Nullable marks a value that may be absent: T?.
type Nullable struct {
	Inner TypeExpr
}

func (*Named) typeNode()    {}
func (*List) typeNode()     {}
func (*Dict) typeNode()     {}
func (*Nullable) typeNode() {}

func (t *Named) String() string    { return t.Name }
func (t *List) String() string     { return "[" + t.Elem.String() + "]" }
func (t *Dict) String() string     { return "{" + t.Key.String() + ": " + t.Value.String() + "}" }
func (t *Nullable) String() string { return t.Inner.String() + "?" }

// Builtin type names, implicitly declared in every module.
const (
	Bool      = "Bool"
	Int       = "Int"
	Float     = "Float"
	String    = "String"
	Timestamp = "Timestamp"
)

// Builtins returns the builtin type names in declaration order.
func Builtins() []string {
	return []string{Bool, Int, Float, String, Timestamp}
}

// IsBuiltin reports whether name is one of the builtin types.
func IsBuiltin(name string) bool {
	switch name {
	case Bool, Int, Float, String, Timestamp:
		return true
	}
	return false
}

// NewNamed, NewList, NewDict and NewNullable are shorthands for building trees in code.
func NewNamed(name string) *Named { return &Named{Name: name} }

func NewList(elem TypeExpr) *List { return &List{Elem: elem} }

func NewDict(key string, value TypeExpr) *Dict { return &Dict{Key: NewNamed(key), Value: value} }

func NewNullable(inner TypeExpr) *Nullable { return &Nullable{Inner: inner} }
