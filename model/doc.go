// Package model holds conversion models: trees of leaf, object and array
// nodes built from a set of leaf paths, and their evaluation against rows.
//
// A model is built once and then rendered for each row:
//
//	e := model.NewEval(row)
//	v, err := e.Render(root)
//
// Rendering omits absent leaves and every subtree whose leaves are all
// absent. Array elements that are absent are skipped, so a rendered array
// can be shorter than the number of indices in the model.
//
// Rendering an absent node fails with ErrNoneValues. Rendering an array
// whose indices are not 0..N-1 fails with ErrMissingArrayIndex.
package model
