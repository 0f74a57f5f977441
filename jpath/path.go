package jpath

import (
	"bytes"
	"strconv"
	"strings"
)

// Root is the path of the top level value.
const Root = "$"

type Kind int

const (
	FieldSegment Kind = iota
	IndexSegment
)

func (k Kind) String() string {
	switch k {
	case FieldSegment:
		return "field"
	case IndexSegment:
		return "index"
	default:
		return "<unknown kind>"
	}
}

// Segment is one step of a path. Key is the field name or the decimal
// form of the index.
type Segment struct {
	Kind Kind
	Key  string
}

func Field(name string) Segment {
	return Segment{Kind: FieldSegment, Key: name}
}

func Index(i int) Segment {
	return Segment{Kind: IndexSegment, Key: strconv.Itoa(i)}
}

func (s Segment) String() string {
	if s.Kind == IndexSegment {
		return "[" + s.Key + "]"
	}
	return "." + s.Key
}

// Path is a parsed path; each element holds one segment and links to the
// next. The root path "$" parses to a nil *Path.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte(Root))
	for x := p; x != nil; x = x.Next {
		buf.WriteString(x.Segment().String())
	}
	return buf.String()
}

// Segment returns the first segment of p.
func (p *Path) Segment() Segment {
	if p.Index != nil {
		return Index(*p.Index)
	}
	if p.Field != nil {
		return Field(*p.Field)
	}
	return Segment{}
}

func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Parse parses p, which must match the path grammar exactly.
func Parse(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, pathErr(p, 0, "should start with '$'")
	}
	if len(p) == 1 {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p, 1, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(p string, off int, seg *Path) error {
	frag := p[off:]
	switch frag[0] {
	case '.':
		n := scanField(frag[1:])
		if n == 0 {
			return pathErr(p, off+1, "expected field name")
		}
		field := frag[1 : 1+n]
		seg.Field = &field
		off += 1 + n
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return pathErr(p, off, "expected '[' <index> ']'")
		}
		index, reason := parseIndex(frag[1:i])
		if reason != "" {
			return pathErr(p, off+1, reason)
		}
		seg.Index = &index
		off += i + 1
	default:
		return pathErr(p, off, "expected '.' or '['")
	}
	if off == len(p) {
		return nil
	}
	seg.Next = &Path{}
	return parseFrag(p, off, seg.Next)
}

func scanField(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '_'):
		default:
			return i
		}
	}
	return len(s)
}

func parseIndex(is string) (int, string) {
	if is == "" {
		return 0, "empty index"
	}
	for i := 0; i < len(is); i++ {
		if is[i] < '0' || is[i] > '9' {
			return 0, "index must be decimal digits"
		}
	}
	index, err := strconv.Atoi(is)
	if err != nil {
		return 0, "index out of range"
	}
	return index, ""
}

// Segments returns the segments of p in order from the root.
func Segments(p string) ([]Segment, error) {
	pp, err := Parse(p)
	if err != nil {
		return nil, err
	}
	res := make([]Segment, 0, pp.Len())
	for x := pp; x != nil; x = x.Next {
		res = append(res, x.Segment())
	}
	return res, nil
}

// Split splits a leaf path into its parent path and its final segment.
// The parent of a single segment path is Root. The parent is returned in
// canonical form, with index keys normalized.
func Split(p string) (parent string, last Segment, err error) {
	segs, err := Segments(p)
	if err != nil {
		return "", Segment{}, err
	}
	if len(segs) == 0 {
		return "", Segment{}, pathErr(p, len(p), "leaf path needs at least one segment")
	}
	n := len(segs) - 1
	return Join(Root, segs[:n]...), segs[n], nil
}

// Join appends segments to parent.
func Join(parent string, segs ...Segment) string {
	buf := bytes.NewBufferString(parent)
	for _, seg := range segs {
		buf.WriteString(seg.String())
	}
	return buf.String()
}

// Canonical returns p with index keys normalized.
func Canonical(p string) (string, error) {
	pp, err := Parse(p)
	if err != nil {
		return "", err
	}
	return pp.String(), nil
}
