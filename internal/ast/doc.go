// Package ast holds the validated tree of a cedar schema.
//
// The tree is made of plain values: Module owns its declarations, every
// declaration owns its members and type expressions. Equality is structural
// (see Equal); nodes carry no positions, so two modules parsed from
// differently formatted text compare equal when they describe the same schema.
//
// Decl and TypeExpr are closed: their interfaces carry an unexported marker
// method, and DeclVisitor/TypeVisitor list every case, so adding a variant
// breaks every visitor at compile time.
package ast
