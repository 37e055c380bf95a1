package jsonsum

import (
	"runtime"
)

// ReadFunc reads the whole content of the named file.
type ReadFunc func(name string) ([]byte, error)

// Options controls how documents are read and parsed.
type Options struct {
	// MaxDepth is the maximum nesting depth of JSON values. Values above the
	// parser's own limit are ignored.
	//
	// Default: 0, which means the parser's limit.
	MaxDepth int
	// Concurrency bounds how many files SumFiles processes at the same time.
	//
	// Default: runtime.NumCPU().
	Concurrency int
	// ReadFunc reads the input file.
	//
	// Default: [os.ReadFile].
	ReadFunc ReadFunc
}

// Option is the functional option type.
type Option func(*Options)

// newDefault returns a default Options.
func newDefault() *Options {
	return &Options{
		Concurrency: runtime.NumCPU(),
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

// MaxDepth limits the nesting depth of parsed documents.
func MaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// Concurrency sets how many files SumFiles processes at the same time.
// Non-positive values keep the default.
func Concurrency(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.Concurrency = n
		}
	}
}

// WithReadFunc replaces the file reader, e.g. to read from an embedded
// filesystem.
func WithReadFunc(fn ReadFunc) Option {
	return func(opts *Options) {
		opts.ReadFunc = fn
	}
}
