// Package format names the output formats of converted documents.
//
//	f, err := format.ParseFormat("ndjson")
package format
