// Package aggregate sums numeric values of a value tree by object key.
//
// A number counts only when it is the direct value of an object member whose
// key equals the search key. Any other value, including a container under a
// matching key, is searched recursively, so nested occurrences of the key are
// still found. Bare numbers (array elements, top-level scalars, members with
// another key) never count.
package aggregate

import (
	"fmt"

	"github.com/tableauio/jsonsum/value"
)

// Stats is the result of one traversal.
type Stats struct {
	Sum   float64 // sum of matched numbers
	Count int     // how many numbers matched
}

// Sum returns the sum of the numbers directly under members named key.
func Sum(v value.Value, key string) float64 {
	return Collect(v, key).Sum
}

// Count returns how many numbers Sum adds up.
func Count(v value.Value, key string) int {
	return Collect(v, key).Count
}

// Collect walks the whole tree in document order and returns both the sum and
// the count of the matched numbers.
func Collect(v value.Value, key string) Stats {
	var st Stats
	walk(v, key, &st)
	return st
}

func walk(v value.Value, key string, st *Stats) {
	switch v := v.(type) {
	case value.Object:
		for _, m := range v {
			if n, ok := m.Value.(value.Number); ok && m.Key == key {
				st.Sum += float64(n)
				st.Count++
				continue
			}
			walk(m.Value, key, st)
		}
	case value.Array:
		for _, item := range v {
			walk(item, key, st)
		}
	case value.Number, value.String, value.Bool, value.Null, nil:
		// leaves only count through their parent member
	default:
		panic(fmt.Sprintf("aggregate: unknown value type %T", v))
	}
}
