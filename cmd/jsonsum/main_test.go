package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsum"
	"github.com/tableauio/jsonsum/format"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"jsonsum": run,
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func Test_render(t *testing.T) {
	r := newReport("price", []*jsonsum.Result{
		{Path: "a.json", Sum: 7.5, Count: 2},
		{Path: "b.json", Sum: 3, Count: 2},
	})
	assert.Equal(t, 10.5, r.Total)
	assert.Equal(t, 4, r.Count)

	tests := []struct {
		name    string
		typ     format.Format
		pretty  bool
		want    string
		wantErr bool
	}{
		{
			name: "text",
			typ:  format.Text,
			want: "a.json: 7.5\nb.json: 3\ntotal: 10.5\n",
		},
		{
			name: "json",
			typ:  format.JSON,
			want: `{"key":"price","files":[{"path":"a.json","sum":7.5,"count":2},{"path":"b.json","sum":3,"count":2}],"total":10.5,"count":4}` + "\n",
		},
		{
			name:   "pretty-json",
			typ:    format.JSON,
			pretty: true,
			want: `{
  "key": "price",
  "files": [
    {
      "path": "a.json",
      "sum": 7.5,
      "count": 2
    },
    {
      "path": "b.json",
      "sum": 3,
      "count": 2
    }
  ],
  "total": 10.5,
  "count": 4
}
`,
		},
		{
			name:    "unknown",
			typ:     format.UnknownFormat,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(r, tt.typ, tt.pretty)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func Test_renderYAML(t *testing.T) {
	r := newReport("price", []*jsonsum.Result{{Path: "a.json", Sum: 7.5, Count: 2}})
	got, err := render(r, format.YAML, false)
	require.NoError(t, err)
	assert.Contains(t, string(got), "key: price\n")
	assert.Contains(t, string(got), "path: a.json\n")
	assert.Contains(t, string(got), "total: 7.5\n")
	assert.Contains(t, string(got), "count: 2\n")
}

func Test_renderText_single(t *testing.T) {
	r := newReport("total", []*jsonsum.Result{{Path: "a.json", Sum: 8}})
	got, err := render(r, format.Text, false)
	require.NoError(t, err)
	assert.Equal(t, "8\n", string(got))
}
