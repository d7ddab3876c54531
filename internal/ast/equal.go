package ast

// Equal reports whether two modules hold structurally equal declarations in
// the same order. Module names are not compared; nil and empty member lists
// are the same.
func Equal(a, b *Module) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Decls) != len(b.Decls) {
		return false
	}
	for i := range a.Decls {
		if !EqualDecl(a.Decls[i], b.Decls[i]) {
			return false
		}
	}
	return true
}

// EqualDecl compares two declarations structurally.
func EqualDecl(a, b Decl) bool {
	switch a := a.(type) {
	case *Enum:
		b, ok := b.(*Enum)
		if !ok || a.Name != b.Name || len(a.Tags) != len(b.Tags) {
			return false
		}
		for i := range a.Tags {
			if a.Tags[i] != b.Tags[i] {
				return false
			}
		}
		return true
	case *Union:
		b, ok := b.(*Union)
		if !ok || a.Name != b.Name || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !EqualType(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *Record:
		b, ok := b.(*Record)
		if !ok || a.Name != b.Name || len(a.Attributes) != len(b.Attributes) {
			return false
		}
		for i := range a.Attributes {
			if a.Attributes[i].Name != b.Attributes[i].Name ||
				!EqualType(a.Attributes[i].Type, b.Attributes[i].Type) {
				return false
			}
		}
		return true
	case *Function:
		b, ok := b.(*Function)
		if !ok || a.Name != b.Name || len(a.Parameters) != len(b.Parameters) {
			return false
		}
		for i := range a.Parameters {
			if a.Parameters[i].Name != b.Parameters[i].Name ||
				!EqualType(a.Parameters[i].Type, b.Parameters[i].Type) {
				return false
			}
		}
		return EqualType(a.Return, b.Return)
	}
	return false
}

// EqualType compares two type expressions structurally.
func EqualType(a, b TypeExpr) bool {
	switch a := a.(type) {
	case *Named:
		b, ok := b.(*Named)
		return ok && a.Name == b.Name
	case *List:
		b, ok := b.(*List)
		return ok && EqualType(a.Elem, b.Elem)
	case *Dict:
		b, ok := b.(*Dict)
		return ok && EqualType(a.Key, b.Key) && EqualType(a.Value, b.Value)
	case *Nullable:
		b, ok := b.(*Nullable)
		return ok && EqualType(a.Inner, b.Inner)
	}
	return false
}
