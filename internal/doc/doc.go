// Package doc is a small algebra of indentation-aware text fragments.
//
// Назначение: общий способ строить многострочный текст с отступами
// (форматтер схем, генераторы кода), чтобы никто не считал пробелы вручную.
// Разрыв строки всегда принудительный: ширина строки не учитывается.
// Зависимости: только стандартная библиотека.
package doc

// Doc is one of Empty, Text, Line, Block or Concat.
type Doc interface {
	// Append returns the document rendering as d followed by other.
	Append(other Doc) Doc
	isDoc()
}

// Empty renders as nothing and is the identity of Append.
type Empty struct{}

// Text is a literal followed by its continuation.
type Text struct {
	Value string
	Next  Doc
}

// Line is a forced line break, indented to the current offset, followed by its continuation.
type Line struct {
	Next Doc
}

// Block renders its children one indent step deeper.
// Children supply their own line breaks.
type Block struct {
	Children []Doc
}

// Concat renders its children in order at the current offset.
type Concat struct {
	Children []Doc
}

func (Empty) isDoc()  {}
func (Text) isDoc()   {}
func (Line) isDoc()   {}
func (Block) isDoc()  {}
func (Concat) isDoc() {}

func (Empty) Append(other Doc) Doc {
	return orEmpty(other)
}

// Append threads other into the continuation, so appended texts collapse into one fragment.
func (t Text) Append(other Doc) Doc {
	if isEmpty(other) {
		return t
	}
	return Text{Value: t.Value, Next: orEmpty(t.Next).Append(other)}
}

func (l Line) Append(other Doc) Doc {
	if isEmpty(other) {
		return l
	}
	return Line{Next: orEmpty(l.Next).Append(other)}
}

// Append never grows the block itself: the result is Concat{b, other}.
func (b Block) Append(other Doc) Doc {
	if isEmpty(other) {
		return b
	}
	return Concat{Children: []Doc{b, other}}
}

func (c Concat) Append(other Doc) Doc {
	switch o := orEmpty(other).(type) {
	case Empty:
		return c
	case Concat:
		children := make([]Doc, 0, len(c.Children)+len(o.Children))
		children = append(children, c.Children...)
		return Concat{Children: append(children, o.Children...)}
	default:
		children := make([]Doc, 0, len(c.Children)+1)
		children = append(children, c.Children...)
		return Concat{Children: append(children, o)}
	}
}

func orEmpty(d Doc) Doc {
	if d == nil {
		return Empty{}
	}
	return d
}

func isEmpty(d Doc) bool {
	if d == nil {
		return true
	}
	_, ok := d.(Empty)
	return ok
}
