package row

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/signadot/pathjson/debug"
	"github.com/signadot/pathjson/ir"
)

type ReaderOption func(*Reader)

// Comma sets the field delimiter, ',' by default.
func Comma(c rune) ReaderOption {
	return func(r *Reader) { r.comma = c }
}

// Infer turns cells reading true, false or a number into booleans and
// numbers, and cells reading null into absent fields.
func Infer(v bool) ReaderOption {
	return func(r *Reader) { r.infer = v }
}

// AbsentValues sets the cell values read as absent, "" by default.
func AbsentValues(vs ...string) ReaderOption {
	return func(r *Reader) {
		r.absent = make(map[string]bool, len(vs))
		for _, v := range vs {
			r.absent[v] = true
		}
	}
}

func WithMapping(m *Mapping) ReaderOption {
	return func(r *Reader) { r.mapping = m }
}

// Reader reads rows from CSV whose header line names the leaf path of
// each column.
type Reader struct {
	csv     *csv.Reader
	comma   rune
	infer   bool
	absent  map[string]bool
	mapping *Mapping

	paths []string
	index map[string]int
}

// NewReader reads the header line from r.
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	res := &Reader{
		comma:  ',',
		absent: map[string]bool{"": true},
		index:  map[string]int{},
	}
	for _, opt := range opts {
		opt(res)
	}
	res.csv = csv.NewReader(r)
	res.csv.Comma = res.comma
	header, err := res.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCSV, err)
	}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		p, ok := res.mapping.Path(h)
		if !ok {
			continue
		}
		res.paths = append(res.paths, p)
		res.index[p] = i
	}
	if debug.Rows() {
		debug.Logf("csv header %v -> paths %v\n", header, res.paths)
	}
	return res, nil
}

// Paths returns the leaf paths of the used columns in column order.
func (r *Reader) Paths() []string {
	return append([]string(nil), r.paths...)
}

// Next returns the next record, or io.EOF.
func (r *Reader) Next() (*Record, error) {
	fields, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCSV, err)
	}
	line, _ := r.csv.FieldPos(0)
	if debug.Rows() {
		debug.Logf("csv line %d: %v\n", line, fields)
	}
	return &Record{Line: line, fields: fields, r: r}, nil
}

// All iterates the remaining records. Iteration stops after the first
// error.
func (r *Reader) All() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Record is one CSV line. It implements model.Row.
type Record struct {
	Line   int
	fields []string
	r      *Reader
}

func (rec *Record) Lookup(path string) *ir.Node {
	i, ok := rec.r.index[path]
	if !ok || i >= len(rec.fields) {
		return nil
	}
	v := rec.fields[i]
	if rec.r.absent[v] {
		return nil
	}
	y := ir.FromString(v)
	if rec.r.infer {
		y.ReType()
		if y.Type == ir.NullType {
			return nil
		}
	}
	return y
}

func (rec *Record) Fields() []string {
	return append([]string(nil), rec.fields...)
}
