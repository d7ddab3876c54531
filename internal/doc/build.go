package doc

// Str is a literal with nothing after it.
func Str(s string) Doc {
	return Text{Value: s, Next: Empty{}}
}

// Newline is a bare line break.
func Newline() Doc {
	return Line{Next: Empty{}}
}

// LineOf puts d on a new line.
func LineOf(d Doc) Doc {
	return Line{Next: orEmpty(d)}
}

// Join appends docs left to right. Join() is Empty.
func Join(docs ...Doc) Doc {
	var out Doc = Empty{}
	for _, d := range docs {
		out = out.Append(d)
	}
	return out
}

// Sep joins docs with sep between neighbours.
func Sep(sep Doc, docs []Doc) Doc {
	var out Doc = Empty{}
	for i, d := range docs {
		if i > 0 {
			out = out.Append(sep)
		}
		out = out.Append(d)
	}
	return out
}

// Indent places every child on its own line one indent step deeper.
func Indent(children ...Doc) Doc {
	lines := make([]Doc, len(children))
	for i, c := range children {
		lines[i] = LineOf(c)
	}
	return Block{Children: lines}
}

// Body renders ` open`, the children on their own indented lines,
// and end on a new line at the enclosing level.
// Empty open and end give the bare indented block.
func Body(open, end string, children ...Doc) Doc {
	block := Indent(children...)
	if open == "" && end == "" {
		return block
	}
	return Join(Str(" "), Str(open), block, LineOf(Str(end)))
}
