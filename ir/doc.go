// Package ir provides the value tree produced by converting a row.
//
// A Node is a recursive tagged union: the Type field says which of the
// other fields carry the value.
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64 or the raw Number text
//   - StringType: String
//   - ObjectType: Fields (string keys) and Values, in insertion order
//   - ArrayType: Values
//
// Children point back at their parent through Parent, ParentIndex and
// ParentField, so a rendered node can report its own Path.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("a"), Val: ir.FromInt(1)},
//	    {Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
//	})
//
// Object field order is preserved by MarshalJSON and FromJSON. ToAny and
// FromAny convert to and from plain Go values (map[string]any, []any and
// scalars), losing field order in the map case.
package ir
