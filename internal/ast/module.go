package ast

// Module is the root: declarations in source order.
type Module struct {
	Name  string // file name the module was parsed from
	Decls []Decl
}

// Decl is one of *Enum, *Union, *Record, *Function.
type Decl interface {
	DeclName() string
	declNode()
}

// Enum lists string tags; it may be empty.
type Enum struct {
	Name string
	Tags []Tag
}

// Tag is a single enum member.
type Tag struct {
	Name string
}

// Union lists at least one member type.
type Union struct {
	Name    string
	Members []*Named
}

// Record is a named set of attributes; it may be empty.
type Record struct {
	Name       string
	Attributes []Attribute
}

// Attribute is a record field.
type Attribute struct {
	Name string
	Type TypeExpr
}

// Function is a remote procedure: parameters in order and a return type.
type Function struct {
	Name       string
	Parameters []Parameter
	Return     TypeExpr
}

// Parameter is a function argument.
type Parameter struct {
	Name string
	Type TypeExpr
}

func (d *Enum) DeclName() string     { return d.Name }
func (d *Union) DeclName() string    { return d.Name }
func (d *Record) DeclName() string   { return d.Name }
func (d *Function) DeclName() string { return d.Name }

func (*Enum) declNode()     {}
func (*Union) declNode()    {}
func (*Record) declNode()   {}
func (*Function) declNode() {}

// DeclaresType reports whether d lives in the type namespace.
func DeclaresType(d Decl) bool {
	_, isFn := d.(*Function)
	return !isFn
}

// Find returns the first declaration with the given name in the type or
// function namespace.
func (m *Module) Find(name string, typeNamespace bool) (Decl, bool) {
	for _, d := range m.Decls {
		if d.DeclName() == name && DeclaresType(d) == typeNamespace {
			return d, true
		}
	}
	return nil, false
}
