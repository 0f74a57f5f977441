// Package jpath parses root anchored field paths.
//
// A path is "$" followed by zero or more segments:
//   - .name - object field; name starts with an ASCII letter and continues
//     with ASCII letters, digits or '_'
//   - [n] - array index, a non-negative decimal integer
//
// A leaf path has at least one segment.
//
// # Usage
//
//	parent, last, err := jpath.Split("$.users[0].name")
//	// parent == "$.users[0]", last == Segment{Kind: FieldSegment, Key: "name"}
//
//	p, err := jpath.Parse("$.a[2]")
//	p.String() // "$.a[2]"
//
// Index keys are normalized: "[007]" has key "7", so "$.a[7]" and
// "$.a[007]" address the same element.
package jpath
