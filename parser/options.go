package parser

import "github.com/valyala/fastjson"

// Options controls the limits of a Parser.
type Options struct {
	// MaxDepth is the maximum nesting depth of values. A top-level scalar
	// has depth 1. It cannot exceed fastjson.MaxDepth.
	//
	// Default: fastjson.MaxDepth.
	MaxDepth int
}

// Option is the functional option type.
type Option func(*Options)

// MaxDepth lowers the maximum nesting depth. Non-positive values and values
// above fastjson.MaxDepth are ignored.
func MaxDepth(depth int) Option {
	return func(opts *Options) {
		if depth > 0 && depth <= fastjson.MaxDepth {
			opts.MaxDepth = depth
		}
	}
}

// newDefault returns a default Options.
func newDefault() *Options {
	return &Options{
		MaxDepth: fastjson.MaxDepth,
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	// Default Options
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
