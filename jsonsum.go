// Package jsonsum sums the numeric values stored under a given object key,
// at any depth, in JSON documents.
//
// Only numbers that are the direct value of a matching key count. A matching
// key holding an object or array is searched for further matches, but the
// bare numbers inside it are not added:
//
//	{"k": 3, "nested": {"k": 4}}  // k: 7
//	{"k": [1, 2, 3]}              // k: 0
//	[{"k": 1}, {"k": 2}]          // k: 3
//
// Errors match xerrors.ErrIO when the file cannot be read, and
// xerrors.ErrSyntax (with a "Syntax at character N" message) when the content
// is not valid JSON.
package jsonsum

import (
	"context"
	"time"

	"github.com/tableauio/jsonsum/aggregate"
	"github.com/tableauio/jsonsum/internal/fs"
	"github.com/tableauio/jsonsum/log"
	"github.com/tableauio/jsonsum/parser"
	"github.com/tableauio/jsonsum/xerrors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of summing one file.
type Result struct {
	Path  string  // input file path
	Sum   float64 // sum of matched numbers
	Count int     // how many numbers matched
}

// Sum reads the JSON file at path and returns the sum of the numbers stored
// directly under object members named key.
func Sum(path, key string, options ...Option) (float64, error) {
	res, err := sumFile(path, key, ParseOptions(options...))
	if err != nil {
		return 0, err
	}
	return res.Sum, nil
}

// SumBytes is like Sum, but for a document already in memory.
func SumBytes(data []byte, key string, options ...Option) (float64, error) {
	st, err := collect(data, key, ParseOptions(options...))
	if err != nil {
		return 0, err
	}
	return st.Sum, nil
}

// SumFiles sums each file of paths concurrently. Results keep the order of
// paths. The first failure stops files not yet started and is returned.
func SumFiles(paths []string, key string, options ...Option) ([]*Result, error) {
	opts := ParseOptions(options...)
	results := make([]*Result, len(paths))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(opts.Concurrency)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := sumFile(path, key, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sumFile(path, key string, opts *Options) (*Result, error) {
	content, err := fs.ReadFile(path, fs.ReadFunc(opts.ReadFunc))
	if err != nil {
		return nil, xerrors.WrapKV(err, xerrors.KeyPath, path, xerrors.KeySearch, key)
	}
	st, err := collect(content, key, opts)
	if err != nil {
		return nil, xerrors.WrapKV(err, xerrors.KeyPath, path, xerrors.KeySearch, key)
	}
	return &Result{Path: path, Sum: st.Sum, Count: st.Count}, nil
}

func collect(data []byte, key string, opts *Options) (aggregate.Stats, error) {
	start := time.Now()
	v, err := parser.Parse(data, parser.MaxDepth(opts.MaxDepth))
	if err != nil {
		return aggregate.Stats{}, err
	}
	parsed := time.Now()
	st := aggregate.Collect(v, key)
	log.Debugw("summed document",
		"bytes", len(data),
		"root", v.Kind(),
		"key", key,
		"sum", st.Sum,
		"count", st.Count,
		"parse", parsed.Sub(start),
		"aggregate", time.Since(parsed))
	return st, nil
}
