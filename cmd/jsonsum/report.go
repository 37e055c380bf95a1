package main

import (
	"bytes"
	"encoding/json"

	"github.com/tableauio/jsonsum"
	"github.com/tableauio/jsonsum/format"
	"github.com/tableauio/jsonsum/internal/printer"
	"github.com/tableauio/jsonsum/xerrors"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

type fileReport struct {
	Path  string  `yaml:"path"`
	Sum   float64 `yaml:"sum"`
	Count int     `yaml:"count"`
}

type report struct {
	Key   string        `yaml:"key"`
	Files []*fileReport `yaml:"files"`
	Total float64       `yaml:"total"`
	Count int           `yaml:"count"`
}

func newReport(key string, results []*jsonsum.Result) *report {
	r := &report{Key: key}
	for _, res := range results {
		r.Files = append(r.Files, &fileReport{Path: res.Path, Sum: res.Sum, Count: res.Count})
		r.Total += res.Sum
		r.Count += res.Count
	}
	return r
}

// render marshals the report in the given format.
func render(r *report, typ format.Format, pretty bool) ([]byte, error) {
	switch typ {
	case format.Text:
		return renderText(r), nil
	case format.JSON:
		return renderJSON(r, pretty)
	case format.YAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return nil, xerrors.Wrapf(err, "failed to marshal report")
		}
		return out, nil
	default:
		return nil, xerrors.Errorf("unknown output format: %s", typ)
	}
}

// renderText prints the sum of a single file as is, and one "path: sum" line
// per file followed by the total for several files.
func renderText(r *report) []byte {
	p := printer.New()
	if len(r.Files) == 1 {
		p.P(r.Files[0].Sum)
		return p.Bytes()
	}
	for _, f := range r.Files {
		p.P(f.Path, ": ", f.Sum)
	}
	p.P("total: ", r.Total)
	return p.Bytes()
}

func renderJSON(r *report, pretty bool) ([]byte, error) {
	var a fastjson.Arena
	files := a.NewArray()
	for i, f := range r.Files {
		o := a.NewObject()
		o.Set("path", a.NewString(f.Path))
		o.Set("sum", a.NewNumberFloat64(f.Sum))
		o.Set("count", a.NewNumberInt(f.Count))
		files.SetArrayItem(i, o)
	}
	root := a.NewObject()
	root.Set("key", a.NewString(r.Key))
	root.Set("files", files)
	root.Set("total", a.NewNumberFloat64(r.Total))
	root.Set("count", a.NewNumberInt(r.Count))
	out := root.MarshalTo(nil)
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return nil, xerrors.Wrapf(err, "failed to indent report")
		}
		out = buf.Bytes()
	}
	return append(out, '\n'), nil
}
