package jsonsum

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// genDocument builds an array of n records, each holding the key "price"
// at two depths and unrelated members around it.
func genDocument(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"item-%d","price":%d.5,"tags":["a","b",null,true],`+
			`"detail":{"price":%d,"stock":[%d,%d],"note":"café"}}`, i, i, i, i, i, i+1)
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func BenchmarkSumBytes(b *testing.B) {
	for _, n := range []int{10, 1000, 100000} {
		data := genDocument(n)
		b.Run(fmt.Sprintf("records-%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := SumBytes(data, "price"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	path := filepath.Join(b.TempDir(), "data.json")
	data := genDocument(10000)
	require.NoError(b, os.WriteFile(path, data, 0644))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sum(path, "price"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSumFiles(b *testing.B) {
	dir := b.TempDir()
	var paths []string
	for i := 0; i < 16; i++ {
		path := filepath.Join(dir, fmt.Sprintf("data-%d.json", i))
		require.NoError(b, os.WriteFile(path, genDocument(1000), 0644))
		paths = append(paths, path)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SumFiles(paths, "price"); err != nil {
			b.Fatal(err)
		}
	}
}

func Test_genDocument(t *testing.T) {
	// price i.5 at the top and i in detail: sum over i of (2i + 0.5)
	n := 100
	got, err := SumBytes(genDocument(n), "price")
	require.NoError(t, err)
	require.InDelta(t, float64(n*(n-1))+0.5*float64(n), got, 1e-9)
}
