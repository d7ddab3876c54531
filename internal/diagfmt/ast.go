package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"cedar/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func leaf(label string) *treeNode {
	return &treeNode{label: label}
}

// FormatASTPretty печатает модуль деревом:
//
//	Module schema.cedar
//	├─ Record User
//	│  └─ id: Int
//	└─ Function getUser -> User?
//	   └─ id: Int
func FormatASTPretty(w io.Writer, m *ast.Module) error {
	root := &treeNode{label: "Module " + m.Name}
	for _, d := range m.Decls {
		root.children = append(root.children, ast.VisitDecl[*treeNode](d, treeBuilder{}))
	}
	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, node *treeNode, prefix string) {
	for i, child := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + child.label + "\n")
		writeChildren(sb, child, prefix+next)
	}
}

type treeBuilder struct{}

func (treeBuilder) VisitEnum(e *ast.Enum) *treeNode {
	n := leaf("Enum " + e.Name)
	for _, tag := range e.Tags {
		n.children = append(n.children, leaf(tag.Name))
	}
	return n
}

func (treeBuilder) VisitUnion(u *ast.Union) *treeNode {
	n := leaf("Union " + u.Name)
	for _, m := range u.Members {
		n.children = append(n.children, leaf(m.String()))
	}
	return n
}

func (treeBuilder) VisitRecord(r *ast.Record) *treeNode {
	n := leaf("Record " + r.Name)
	for _, a := range r.Attributes {
		n.children = append(n.children, leaf(a.Name+": "+a.Type.String()))
	}
	return n
}

func (treeBuilder) VisitFunction(f *ast.Function) *treeNode {
	n := leaf("Function " + f.Name + " -> " + f.Return.String())
	for _, p := range f.Parameters {
		n.children = append(n.children, leaf(p.Name+": "+p.Type.String()))
	}
	return n
}

// ASTNodeOutput is the JSON form of a declaration or type expression.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON пишет модуль как JSON-дерево.
func FormatASTJSON(w io.Writer, m *ast.Module) error {
	root := ASTNodeOutput{Type: "Module", Name: m.Name}
	for _, d := range m.Decls {
		root.Children = append(root.Children, ast.VisitDecl[ASTNodeOutput](d, jsonBuilder{}))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

type jsonBuilder struct{}

func (jsonBuilder) VisitEnum(e *ast.Enum) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Enum", Name: e.Name}
	for _, tag := range e.Tags {
		out.Children = append(out.Children, ASTNodeOutput{Type: "Tag", Name: tag.Name})
	}
	return out
}

func (jsonBuilder) VisitUnion(u *ast.Union) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Union", Name: u.Name}
	for _, m := range u.Members {
		out.Children = append(out.Children, typeJSON(m))
	}
	return out
}

func (jsonBuilder) VisitRecord(r *ast.Record) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Record", Name: r.Name}
	for _, a := range r.Attributes {
		out.Children = append(out.Children, ASTNodeOutput{
			Type: "Attribute", Name: a.Name, Children: []ASTNodeOutput{typeJSON(a.Type)},
		})
	}
	return out
}

func (jsonBuilder) VisitFunction(f *ast.Function) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Function", Name: f.Name}
	for _, p := range f.Parameters {
		out.Children = append(out.Children, ASTNodeOutput{
			Type: "Parameter", Name: p.Name, Children: []ASTNodeOutput{typeJSON(p.Type)},
		})
	}
	out.Children = append(out.Children, ASTNodeOutput{Type: "Return", Children: []ASTNodeOutput{typeJSON(f.Return)}})
	return out
}

func typeJSON(t ast.TypeExpr) ASTNodeOutput {
	return ast.VisitType[ASTNodeOutput](t, typeJSONBuilder{})
}

type typeJSONBuilder struct{}

func (typeJSONBuilder) VisitNamed(n *ast.Named) ASTNodeOutput {
	return ASTNodeOutput{Type: "Named", Name: n.Name}
}

func (typeJSONBuilder) VisitList(l *ast.List) ASTNodeOutput {
	return ASTNodeOutput{Type: "List", Children: []ASTNodeOutput{typeJSON(l.Elem)}}
}

func (typeJSONBuilder) VisitDict(d *ast.Dict) ASTNodeOutput {
	return ASTNodeOutput{Type: "Dict", Children: []ASTNodeOutput{typeJSON(d.Key), typeJSON(d.Value)}}
}

func (typeJSONBuilder) VisitNullable(n *ast.Nullable) ASTNodeOutput {
	return ASTNodeOutput{Type: "Nullable", Children: []ASTNodeOutput{typeJSON(n.Inner)}}
}
