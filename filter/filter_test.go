package filter

import (
	"testing"

	"github.com/signadot/pathjson/row"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	r, err := row.FromValues(map[string]any{
		"$.id":      7,
		"$.name":    "ann",
		"$.tags[0]": "x",
		"$.ok":      true,
		"$.score":   2.5,
	})
	require.NoError(t, err)

	tests := map[string]bool{
		`has("$.id")`:                               true,
		`has("$.missing")`:                          false,
		`get("$.id") == 7`:                          true,
		`get("$.id") > 3 && get("$.score") < 3`:     true,
		`get("$.name") == "ann"`:                    true,
		`get("$.name") startsWith "b"`:              false,
		`get("$.ok")`:                               true,
		`get("$.missing") == nil`:                   true,
		`has("$.tags[0]") and not has("$.tags[1]")`: true,
	}
	for src, want := range tests {
		f, err := Compile(src)
		require.NoError(t, err, src)
		got, err := f.Match(r)
		require.NoError(t, err, src)
		assert.Equal(t, want, got, src)
		assert.Equal(t, src, f.String())
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`get(`, `"a" + `, `1 + 2`, `unknown("$.a")`} {
		_, err := Compile(src)
		assert.ErrorIs(t, err, ErrFilter, src)
	}
}

func TestRunError(t *testing.T) {
	f, err := Compile(`get("$.a") > 1`)
	require.NoError(t, err)
	r, err := row.FromValues(map[string]any{"$.a": "text"})
	require.NoError(t, err)
	_, err = f.Match(r)
	assert.ErrorIs(t, err, ErrFilter)
}
