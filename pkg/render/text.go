package render

import (
	"strconv"
	"strings"

	"github.com/seal-io/bendump/pkg/element"
)

// DefaultIndent is the indentation unit of Text.
const DefaultIndent = "  "

// Text renders the given tree as indented text,
// an empty indent means DefaultIndent.
//
// Integers print as decimal digits, byte strings in double quotes without escaping,
// lists on a single line and dictionaries with one entry per line,
// except inside a list where they stay on the line of the list.
func Text(e element.Element, indent string) string {
	if indent == "" {
		indent = DefaultIndent
	}

	var sb strings.Builder

	t := textWriter{sb: &sb, indent: indent}
	t.write(e, 0, false)

	return sb.String()
}

type textWriter struct {
	sb     *strings.Builder
	indent string
}

// write renders e at the given depth,
// inline is set for everything enclosed by a list.
func (t textWriter) write(e element.Element, depth int, inline bool) {
	switch v := e.(type) {
	case element.Integer:
		t.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case element.ByteString:
		t.quote(v)
	case element.List:
		t.sb.WriteByte('[')

		for i := range v {
			if i != 0 {
				t.sb.WriteString(", ")
			}

			t.write(v[i], depth, true)
		}

		t.sb.WriteByte(']')
	case *element.Dictionary:
		if inline {
			t.writeInline(v, depth)
			return
		}

		if depth != 0 {
			t.sb.WriteByte('\n')
			t.pad(depth)
		}

		t.sb.WriteString("{\n")

		for _, et := range v.Entries() {
			t.pad(depth + 1)
			t.quote(et.Key)
			t.sb.WriteString(": ")
			t.write(et.Value, depth+1, false)
			t.sb.WriteByte('\n')
		}

		t.pad(depth)
		t.sb.WriteByte('}')
	default:
		panic("render: unknown element " + strconv.Quote(typeName(e)))
	}
}

func (t textWriter) writeInline(d *element.Dictionary, depth int) {
	t.sb.WriteByte('{')

	for i, et := range d.Entries() {
		if i != 0 {
			t.sb.WriteString(", ")
		}

		t.quote(et.Key)
		t.sb.WriteString(": ")
		t.write(et.Value, depth, true)
	}

	t.sb.WriteByte('}')
}

func (t textWriter) quote(s element.ByteString) {
	t.sb.WriteByte('"')
	t.sb.WriteString(string(s))
	t.sb.WriteByte('"')
}

func (t textWriter) pad(depth int) {
	for i := 0; i < depth; i++ {
		t.sb.WriteString(t.indent)
	}
}
