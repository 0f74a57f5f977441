// Package encode writes converted documents as indented JSON, NDJSON or
// YAML.
//
// # Usage
//
//	// Indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// One compact document per line
//	err := encode.Encode(node, w, encode.EncodeFormat(format.NDJSONFormat))
//
//	// With terminal colors
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// Object fields are written in the order of the node, for all formats.
package encode
