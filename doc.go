// Package pathjson converts flat rows whose fields are named by paths such
// as "$.user.tags[0]" into nested values.
//
// A converter is built once from the complete set of leaf paths and then
// applied to any number of rows:
//
//	conv, err := pathjson.NewConverter([]string{"$.A", "$.B[0].c", "$.B[1].c"})
//	if err != nil {
//	    return err
//	}
//	v, err := conv.Convert(row) // v is an *ir.Node
//
// Fields absent from a row are omitted, as are objects and arrays whose
// fields are all absent; absent array elements are skipped. Scalars are
// passed through as the row returns them.
//
// A Converter is safe for concurrent use: evaluation state for a row lives
// in a model.Eval, not in the model.
//
// # Related Packages
//
//   - github.com/signadot/pathjson/jpath - path grammar
//   - github.com/signadot/pathjson/model - model nodes and evaluation
//   - github.com/signadot/pathjson/row - row sources (maps, CSV)
//   - github.com/signadot/pathjson/encode - JSON, NDJSON and YAML output
package pathjson
