// Package patch applies JSON patches (RFC 6902) to converted documents.
package patch
