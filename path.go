package goshape

import (
	"strconv"
	"strings"
)

// DefaultName labels the root of the input in messages when no name is given.
const DefaultName = "Obj"

type segment struct {
	name  string
	index int
	isIdx bool
}

// Path locates a value inside the input. It is immutable: Field and Index
// return extended copies, so sibling paths never share state.
type Path struct {
	name  string
	parts []segment
}

// Root returns the empty path labelled name.
func Root(name string) Path {
	if name == "" {
		name = DefaultName
	}
	return Path{name: name}
}

func (p Path) extend(s segment) Path {
	parts := make([]segment, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)
	return Path{name: p.name, parts: append(parts, s)}
}

// Field appends an object key.
func (p Path) Field(name string) Path { return p.extend(segment{name: name}) }

// Index appends an array index.
func (p Path) Index(i int) Path { return p.extend(segment{index: i, isIdx: true}) }

// Name returns the root label.
func (p Path) Name() string { return p.name }

// Key renders the accessor below the root: top-level fields appear bare and
// deeper keys and indices in brackets, e.g. items[2][count].
func (p Path) Key() string {
	b := &strings.Builder{}
	for i, s := range p.parts {
		switch {
		case s.isIdx:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		case i == 0:
			b.WriteString(s.name)
		default:
			b.WriteByte('[')
			b.WriteString(s.name)
			b.WriteByte(']')
		}
	}
	return b.String()
}

// String renders name.key, or just the name at the root.
func (p Path) String() string {
	if len(p.parts) == 0 {
		return p.name
	}
	return p.name + "." + p.Key()
}

// Pointer renders the path as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p.parts {
		b.WriteByte('/')
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1'
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.name, "~", "~0"), "/", "~1"))
	}
	return b.String()
}
