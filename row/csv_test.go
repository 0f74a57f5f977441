package row

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/signadot/pathjson/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `$.A,$.B[0].c,$.B[1].c,$.C[0]
1,x,,true
2,,y,null
`

func TestReaderPaths(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"$.A", "$.B[0].c", "$.B[1].c", "$.C[0]"}, r.Paths())
}

func TestReaderStrings(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Line)
	a := rec.Lookup("$.A")
	require.NotNil(t, a)
	assert.Equal(t, ir.StringType, a.Type)
	assert.Equal(t, "1", a.String)
	assert.Nil(t, rec.Lookup("$.B[1].c"))
	assert.Nil(t, rec.Lookup("$.nope"))
	assert.Equal(t, "true", rec.Lookup("$.C[0]").String)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "null", rec.Lookup("$.C[0]").String)
	assert.Equal(t, []string{"2", "", "y", "null"}, rec.Fields())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderInfer(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleCSV), Infer(true))
	require.NoError(t, err)

	var recs []*Record
	for rec, err := range r.All() {
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)

	a := recs[0].Lookup("$.A")
	require.NotNil(t, a)
	assert.Equal(t, ir.NumberType, a.Type)
	assert.Equal(t, int64(1), *a.Int64)
	assert.Equal(t, true, recs[0].Lookup("$.C[0]").Bool)
	assert.Equal(t, "x", recs[0].Lookup("$.B[0].c").String)
	assert.Nil(t, recs[1].Lookup("$.C[0]"), "null is absent when inferring")
}

func TestReaderAbsentValues(t *testing.T) {
	in := "$.a,$.b\nNA,\n"
	r, err := NewReader(strings.NewReader(in), AbsentValues("NA"))
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, rec.Lookup("$.a"))
	b := rec.Lookup("$.b")
	require.NotNil(t, b, "empty cell is a value once absent values are replaced")
	assert.Equal(t, "", b.String)
}

func TestReaderComma(t *testing.T) {
	in := "$.a;$.b\n1;2\n"
	r, err := NewReader(strings.NewReader(in), Comma(';'))
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", rec.Lookup("$.b").String)
}

func TestReaderBOM(t *testing.T) {
	r, err := NewReader(strings.NewReader("\ufeff$.a\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"$.a"}, r.Paths())
}

func TestReaderErrors(t *testing.T) {
	_, err := NewReader(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	r, err := NewReader(strings.NewReader("$.a,$.b\n1,2,3\n"))
	require.NoError(t, err)
	_, err = r.Next()
	assert.ErrorIs(t, err, ErrCSV)

	r, err = NewReader(strings.NewReader("$.a,$.b\n1,2,3\n4,5\n"))
	require.NoError(t, err)
	n := 0
	for _, err := range r.All() {
		n++
		assert.True(t, errors.Is(err, ErrCSV))
	}
	assert.Equal(t, 1, n, "iteration stops at the first error")
}

func TestReaderMapping(t *testing.T) {
	m := &Mapping{
		Columns: map[string]string{"name": "$.user.name", "tag": "$.user.tags[0]"},
	}
	in := "id,name,tag\n7,ann,admin\n"
	r, err := NewReader(strings.NewReader(in), WithMapping(m))
	require.NoError(t, err)
	assert.Equal(t, []string{"$.user.name", "$.user.tags[0]"}, r.Paths())
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "admin", rec.Lookup("$.user.tags[0]").String)
	assert.Nil(t, rec.Lookup("id"))
}
