// Package parser converts raw JSON bytes into a value tree.
package parser

import (
	"github.com/tableauio/jsonsum/value"
)

type Parser interface {
	// Parse parses the given json bytes into a value tree. Invalid input
	// yields an error matching xerrors.ErrSyntax.
	Parse(data []byte) (value.Value, error)
}

// Fastjson is the default parser.
var Fastjson Parser = NewFastjson()

// Parse parses data into a value tree.
func Parse(data []byte, options ...Option) (value.Value, error) {
	if len(options) == 0 {
		return Fastjson.Parse(data)
	}
	return NewFastjson(options...).Parse(data)
}
