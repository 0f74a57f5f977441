package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pathjson/ir"
)

type testRow map[string]*ir.Node

func (r testRow) Lookup(path string) *ir.Node {
	return r[path]
}

type countingRow struct {
	testRow
	lookups map[string]int
}

func (r *countingRow) Lookup(path string) *ir.Node {
	r.lookups[path]++
	return r.testRow[path]
}

func mustAdd(t *testing.T, parent *Node, key string, child *Node) *Node {
	t.Helper()
	if err := parent.AddChild(key, child); err != nil {
		t.Fatal(err)
	}
	return child
}

// $.a, $.o.x, $.o.y, $.arr[0], $.arr[1], $.arr[2]
func sampleTree(t *testing.T) *Node {
	root := NewObject("$")
	mustAdd(t, root, "a", NewLeaf("$.a"))
	o := mustAdd(t, root, "o", NewObject("$.o"))
	mustAdd(t, o, "x", NewLeaf("$.o.x"))
	mustAdd(t, o, "y", NewLeaf("$.o.y"))
	arr := mustAdd(t, root, "arr", NewArray("$.arr"))
	mustAdd(t, arr, "0", NewLeaf("$.arr[0]"))
	mustAdd(t, arr, "1", NewLeaf("$.arr[1]"))
	mustAdd(t, arr, "2", NewLeaf("$.arr[2]"))
	return root
}

func render(t *testing.T, n *Node, row Row) any {
	t.Helper()
	v, err := n.Render(row)
	if err != nil {
		t.Fatal(err)
	}
	return v.ToAny()
}

func TestRenderFull(t *testing.T) {
	root := sampleTree(t)
	row := testRow{
		"$.a":      ir.FromInt(1),
		"$.o.x":    ir.FromString("x"),
		"$.o.y":    ir.FromBool(false),
		"$.arr[0]": ir.FromFloat(0.5),
		"$.arr[1]": ir.FromFloat(1.5),
		"$.arr[2]": ir.FromFloat(2.5),
	}
	want := map[string]any{
		"a":   int64(1),
		"o":   map[string]any{"x": "x", "y": false},
		"arr": []any{0.5, 1.5, 2.5},
	}
	if diff := cmp.Diff(want, render(t, root, row)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOmitsAbsentSubtree(t *testing.T) {
	root := sampleTree(t)
	row := testRow{
		"$.a":      ir.FromInt(1),
		"$.arr[1]": ir.FromString("only"),
	}
	want := map[string]any{
		"a":   int64(1),
		"arr": []any{"only"},
	}
	if diff := cmp.Diff(want, render(t, root, row)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCompactsArray(t *testing.T) {
	root := sampleTree(t)
	row := testRow{
		"$.arr[0]": ir.FromInt(0),
		"$.arr[2]": ir.FromInt(2),
	}
	v, err := root.Render(row)
	if err != nil {
		t.Fatal(err)
	}
	arr := field(v, "arr")
	if arr == nil || len(arr.Values) != 2 {
		t.Fatalf("expected 2 array values, got %v", v.ToAny())
	}
	if *arr.Values[0].Int64 != 0 || *arr.Values[1].Int64 != 2 {
		t.Errorf("got %v", arr.ToAny())
	}
}

func TestRenderKeepsFieldOrder(t *testing.T) {
	root := NewObject("$")
	for _, k := range []string{"z", "a", "m"} {
		mustAdd(t, root, k, NewLeaf("$."+k))
	}
	v, err := root.Render(testRow{"$.z": ir.FromInt(1), "$.a": ir.FromInt(2), "$.m": ir.FromInt(3)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"z":1,"a":2,"m":3}` {
		t.Errorf("got %s", d)
	}
}

func TestRenderAllAbsent(t *testing.T) {
	root := sampleTree(t)
	_, err := root.Render(testRow{})
	if !errors.Is(err, ErrNoneValues) {
		t.Fatalf("expected ErrNoneValues, got %v", err)
	}
	var ne *NoneValuesError
	if !errors.As(err, &ne) || ne.Path != "$" || !ne.Subtree {
		t.Errorf("got %#v", err)
	}
}

func TestRenderAbsentLeaf(t *testing.T) {
	leaf := NewLeaf("$.a")
	_, err := leaf.Render(testRow{})
	var ne *NoneValuesError
	if !errors.As(err, &ne) || ne.Path != "$.a" || ne.Subtree {
		t.Errorf("got %v", err)
	}
}

func TestRenderMissingArrayIndex(t *testing.T) {
	root := NewObject("$")
	arr := mustAdd(t, root, "c", NewArray("$.c"))
	mustAdd(t, arr, "0", NewLeaf("$.c[0]"))
	mustAdd(t, arr, "2", NewLeaf("$.c[2]"))
	mustAdd(t, root, "d", NewLeaf("$.d"))

	_, err := root.Render(testRow{"$.c[2]": ir.FromInt(2)})
	if !errors.Is(err, ErrMissingArrayIndex) {
		t.Fatalf("expected ErrMissingArrayIndex, got %v", err)
	}
	var me *MissingIndexError
	if !errors.As(err, &me) || me.Index != 1 || me.Path != "$.c" {
		t.Errorf("got %#v", err)
	}

	// the gap is only seen when the array is rendered
	got := render(t, root, testRow{"$.d": ir.FromString("d")})
	if diff := cmp.Diff(map[string]any{"d": "d"}, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	root := sampleTree(t)
	row := testRow{
		"$.a":      ir.FromInt(1),
		"$.o.y":    ir.FromString("y"),
		"$.arr[2]": ir.FromInt(2),
	}
	e := NewEval(row)
	v1, err := e.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := e.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v1.ToAny(), v2.ToAny()); diff != "" {
		t.Errorf("second render differs:\n%s", diff)
	}
	if len(row) != 3 || row["$.a"].Parent != nil {
		t.Error("row was mutated")
	}
	if root.Len() != 3 || root.Child("arr").Len() != 3 {
		t.Error("tree was mutated")
	}
}

func TestRenderLooksUpEachLeafOnce(t *testing.T) {
	root := sampleTree(t)
	row := &countingRow{
		testRow: testRow{
			"$.a":      ir.FromInt(1),
			"$.o.x":    ir.FromInt(2),
			"$.arr[1]": ir.FromInt(3),
		},
		lookups: map[string]int{},
	}
	if _, err := root.Render(row); err != nil {
		t.Fatal(err)
	}
	for p, n := range row.lookups {
		if n != 1 {
			t.Errorf("%s looked up %d times", p, n)
		}
	}
}

func TestPresent(t *testing.T) {
	root := sampleTree(t)
	row := testRow{"$.o.y": ir.FromString("")}
	e := NewEval(row)
	if !e.Present(root) || !e.Present(root.Child("o")) {
		t.Error("expected root and o present")
	}
	if e.Present(root.Child("arr")) || e.Present(root.Child("a")) {
		t.Error("expected arr and a absent")
	}
}

func TestRenderPassesScalarsThrough(t *testing.T) {
	root := NewObject("$")
	mustAdd(t, root, "n", NewLeaf("$.n"))
	src := ir.Null()
	v, err := root.Render(testRow{"$.n": src})
	if err != nil {
		t.Fatal(err)
	}
	got := field(v, "n")
	if got.Type != ir.NullType || got == src {
		t.Errorf("expected a copy of the row's null node, got %v", got)
	}
	if got.Path() != "$.n" {
		t.Errorf("got path %s", got.Path())
	}
}

func field(y *ir.Node, name string) *ir.Node {
	for i, f := range y.Fields {
		if f.String == name {
			return y.Values[i]
		}
	}
	return nil
}
