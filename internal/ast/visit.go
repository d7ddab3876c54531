package ast

import "fmt"

// DeclVisitor handles every declaration variant.
type DeclVisitor[R any] interface {
	VisitEnum(*Enum) R
	VisitUnion(*Union) R
	VisitRecord(*Record) R
	VisitFunction(*Function) R
}

// TypeVisitor handles every type expression variant.
type TypeVisitor[R any] interface {
	VisitNamed(*Named) R
	VisitList(*List) R
	VisitDict(*Dict) R
	VisitNullable(*Nullable) R
}

// VisitDecl dispatches d to the matching method of v.
func VisitDecl[R any](d Decl, v DeclVisitor[R]) R {
	switch d := d.(type) {
	case *Enum:
		return v.VisitEnum(d)
	case *Union:
		return v.VisitUnion(d)
	case *Record:
		return v.VisitRecord(d)
	case *Function:
		return v.VisitFunction(d)
	}
	panic(fmt.Sprintf("ast: unexpected declaration %T", d))
}

// VisitType dispatches t to the matching method of v.
func VisitType[R any](t TypeExpr, v TypeVisitor[R]) R {
	switch t := t.(type) {
	case *Named:
		return v.VisitNamed(t)
	case *List:
		return v.VisitList(t)
	case *Dict:
		return v.VisitDict(t)
	case *Nullable:
		return v.VisitNullable(t)
	}
	panic(fmt.Sprintf("ast: unexpected type expression %T", t))
}

// Walk calls fn for t and every type expression nested inside it, outermost first.
func Walk(t TypeExpr, fn func(TypeExpr)) {
	fn(t)
	switch t := t.(type) {
	case *List:
		Walk(t.Elem, fn)
	case *Dict:
		Walk(t.Key, fn)
		Walk(t.Value, fn)
	case *Nullable:
		Walk(t.Inner, fn)
	}
}
