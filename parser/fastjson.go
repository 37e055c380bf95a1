package parser

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/tableauio/jsonsum/value"
	"github.com/tableauio/jsonsum/xerrors"
	"github.com/valyala/fastjson"
)

var pool fastjson.ParserPool

type fastjsonParser struct {
	opts *Options
}

// NewFastjson creates a parser that validates input with the position
// tracking scanner and builds the tree with fastjson.
func NewFastjson(options ...Option) Parser {
	return &fastjsonParser{opts: ParseOptions(options...)}
}

func (p *fastjsonParser) Parse(data []byte) (value.Value, error) {
	if err := Validate(data, p.opts.MaxDepth); err != nil {
		return nil, err
	}
	fp := pool.Get()
	defer pool.Put(fp)
	root, err := fp.ParseBytes(data)
	if err != nil {
		// unreachable for input accepted by Validate
		return nil, xerrors.E0002(utf8.RuneCount(data), err.Error())
	}
	// the converted tree copies everything it needs, so fp may be reused
	return convert(root), nil
}

func convert(v *fastjson.Value) value.Value {
	switch v.Type() {
	case fastjson.TypeNull:
		return value.Null{}
	case fastjson.TypeTrue:
		return value.Bool(true)
	case fastjson.TypeFalse:
		return value.Bool(false)
	case fastjson.TypeNumber:
		return value.Number(parseNumber(v.MarshalTo(nil)))
	case fastjson.TypeString:
		return value.String(v.GetStringBytes())
	case fastjson.TypeArray:
		items := v.GetArray()
		arr := make(value.Array, 0, len(items))
		for _, item := range items {
			arr = append(arr, convert(item))
		}
		return arr
	case fastjson.TypeObject:
		o := v.GetObject()
		obj := make(value.Object, 0, o.Len())
		o.Visit(func(key []byte, v *fastjson.Value) {
			obj = append(obj, value.Member{Key: string(key), Value: convert(v)})
		})
		return obj
	default:
		panic(fmt.Sprintf("unexpected fastjson type: %s", v.Type()))
	}
}

// parseNumber decodes a validated JSON number. Magnitudes beyond the float64
// range saturate to ±Inf (or 0 on underflow) as IEEE-754 rounding does.
func parseNumber(raw []byte) float64 {
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("invalid number %q: %s", raw, err))
	}
	return f
}
