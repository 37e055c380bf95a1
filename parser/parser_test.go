package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsum/value"
	"github.com/tableauio/jsonsum/xerrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want value.Value
	}{
		{
			name: "empty-object",
			data: `{}`,
			want: value.Object{},
		},
		{
			name: "empty-array",
			data: ` [ ] `,
			want: value.Array{},
		},
		{
			name: "top-level-number",
			data: `-12.5e1`,
			want: value.Number(-125),
		},
		{
			name: "all-kinds",
			data: `{"a": [1, 2.5, -3e2, true, false, null, "sé\n"], "b": {}}`,
			want: value.Object{
				{Key: "a", Value: value.Array{
					value.Number(1),
					value.Number(2.5),
					value.Number(-300),
					value.Bool(true),
					value.Bool(false),
					value.Null{},
					value.String("sé\n"),
				}},
				{Key: "b", Value: value.Object{}},
			},
		},
		{
			name: "surrogate-pair",
			data: `["\ud83d\ude00"]`,
			want: value.Array{value.String("😀")},
		},
		{
			name: "duplicate-keys-preserved",
			data: `{"k": 1, "k": 2}`,
			want: value.Object{
				{Key: "k", Value: value.Number(1)},
				{Key: "k", Value: value.Number(2)},
			},
		},
		{
			name: "escaped-key",
			data: `{"a\"b": null}`,
			want: value.Object{
				{Key: `a"b`, Value: value.Null{}},
			},
		},
		{
			name: "number-overflow-saturates",
			data: `[1e400]`,
			want: value.Array{value.Number(math.Inf(1))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	type args struct {
		data    string
		options []Option
	}
	tests := []struct {
		name       string
		args       args
		wantOffset int
		wantReason string
	}{
		{
			name:       "truncated-object",
			args:       args{data: `{"broken": {`},
			wantOffset: 11,
			wantReason: "unexpected end of JSON input",
		},
		{
			name:       "empty",
			args:       args{data: ``},
			wantOffset: 0,
			wantReason: "unexpected end of JSON input",
		},
		{
			name:       "whitespace-only",
			args:       args{data: "   "},
			wantOffset: 0,
		},
		{
			name:       "trailing-data",
			args:       args{data: `{} x`},
			wantOffset: 3,
			wantReason: `invalid character 'x' after top-level value`,
		},
		{
			name:       "trailing-comma",
			args:       args{data: `[1,]`},
			wantOffset: 3,
		},
		{
			name:       "missing-colon",
			args:       args{data: `{"a" 1}`},
			wantOffset: 5,
			wantReason: `invalid character '1' after object key`,
		},
		{
			name:       "bad-literal",
			args:       args{data: `{"a": tru}`},
			wantOffset: 9,
		},
		{
			name:       "truncated-literal",
			args:       args{data: `nul`},
			wantOffset: 2,
		},
		{
			name:       "unterminated-string",
			args:       args{data: `["abc`},
			wantOffset: 4,
		},
		{
			name:       "multibyte-counts-characters",
			args:       args{data: `{"é": {`},
			wantOffset: 6,
		},
		{
			name:       "leading-zero",
			args:       args{data: `[01]`},
			wantOffset: 2,
			wantReason: `invalid character '1' after array element`,
		},
		{
			name:       "bad-escape",
			args:       args{data: `"\x"`},
			wantOffset: 2,
		},
		{
			name:       "bad-unicode-escape",
			args:       args{data: `"\u12g4"`},
			wantOffset: 5,
		},
		{
			name:       "control-character-in-string",
			args:       args{data: "\"a\nb\""},
			wantOffset: 2,
		},
		{
			name:       "fraction-without-digits",
			args:       args{data: `[1.]`},
			wantOffset: 3,
		},
		{
			name:       "lone-minus",
			args:       args{data: `-`},
			wantOffset: 0,
		},
		{
			name:       "exponent-without-digits",
			args:       args{data: `1e+`},
			wantOffset: 2,
		},
		{
			name:       "unclosed-object-after-member",
			args:       args{data: `{"a":1`},
			wantOffset: 5,
		},
		{
			name:       "unclosed-nested-objects",
			args:       args{data: `{"a":{"b":{"c":1}}`},
			wantOffset: 17,
		},
		{
			name:       "unclosed-array-of-objects",
			args:       args{data: `[{"k":1},{"k":2}`},
			wantOffset: 15,
		},
		{
			name:       "unclosed-inner-array",
			args:       args{data: `{"a": [1, 2, 3`},
			wantOffset: 13,
		},
		{
			name:       "truncated-before-trailing-whitespace",
			args:       args{data: "{\"a\":1  \n"},
			wantOffset: 5,
		},
		{
			name:       "truncated-after-multibyte-character",
			args:       args{data: `["aé`},
			wantOffset: 3,
		},
		{
			name:       "missing-comma",
			args:       args{data: `[1 2]`},
			wantOffset: 3,
		},
		{
			name:       "mismatched-bracket",
			args:       args{data: `{"a": [1}`},
			wantOffset: 8,
		},
		{
			name:       "non-string-key",
			args:       args{data: `{1: 2}`},
			wantOffset: 1,
		},
		{
			name:       "too-deep",
			args:       args{data: `[[[1]]]`, options: []Option{MaxDepth(3)}},
			wantOffset: 3,
			wantReason: "exceeded max depth 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.args.data), tt.args.options...)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, xerrors.ErrSyntax)

			var serr *xerrors.SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.wantOffset, serr.Offset)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, serr.Reason)
			}
		})
	}
}

func TestParse_TruncatedMessage(t *testing.T) {
	_, err := Parse([]byte(`{"broken": {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax at character 11")
}

func TestParse_MaxDepth(t *testing.T) {
	nested := func(n int) []byte {
		return []byte(strings.Repeat("[", n) + strings.Repeat("]", n))
	}
	// an empty array at depth 300 has no children
	_, err := Parse(nested(300))
	assert.NoError(t, err)

	_, err = Parse(nested(301))
	var serr *xerrors.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 300, serr.Offset)

	// out-of-range values keep the default
	_, err = Parse(nested(300), MaxDepth(0), MaxDepth(100000))
	assert.NoError(t, err)
}

func TestParser_Reuse(t *testing.T) {
	p := NewFastjson()
	first, err := p.Parse([]byte(`{"k": "first"}`))
	require.NoError(t, err)
	_, err = p.Parse([]byte(`{"k": "second"}`))
	require.NoError(t, err)
	// trees never alias pooled parser memory
	assert.Equal(t, value.Object{{Key: "k", Value: value.String("first")}}, first)
}
