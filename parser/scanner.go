package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/tableauio/jsonsum/xerrors"
)

const reasonUnexpectedEOF = "unexpected end of JSON input"

// scanner checks the JSON grammar (RFC 8259) and locates the first error.
//
// Errors are reported at the offending character. Running out of input is
// reported at the last non-whitespace character, the furthest point a valid
// prefix reaches.
type scanner struct {
	data     []byte
	pos      int
	maxDepth int
	open     *arraystack.Stack // of '{' or '[' not closed yet
}

// Validate reports the first syntax error of data as an error matching
// xerrors.ErrSyntax, or nil if data holds exactly one valid JSON value.
func Validate(data []byte, maxDepth int) error {
	s := &scanner{
		data:     data,
		maxDepth: maxDepth,
		open:     arraystack.New(),
	}
	return s.scan()
}

func (s *scanner) scan() error {
	s.skipWS()
	if err := s.value(); err != nil {
		return err
	}
	// Each round consumes the separator or closing bracket that follows a
	// complete element of the innermost open container.
	for !s.open.Empty() {
		s.skipWS()
		if s.eof() {
			return s.unexpectedEOF()
		}
		top := s.top()
		c := s.data[s.pos]
		switch {
		case c == ',':
			s.pos++
			s.skipWS()
			var err error
			if top == '{' {
				err = s.member()
			} else {
				err = s.value()
			}
			if err != nil {
				return err
			}
		case top == '{' && c == '}', top == '[' && c == ']':
			s.pos++
			s.open.Pop()
		case top == '{':
			return s.errorf(s.pos, "invalid character %q after object key:value pair", c)
		default:
			return s.errorf(s.pos, "invalid character %q after array element", c)
		}
	}
	s.skipWS()
	if !s.eof() {
		return s.errorf(s.pos, "invalid character %q after top-level value", s.data[s.pos])
	}
	return nil
}

// value scans one value starting at s.pos. An opening bracket is pushed and
// the first element (or the immediate closing bracket) is scanned as well.
func (s *scanner) value() error {
	if s.eof() {
		return s.unexpectedEOF()
	}
	if s.open.Size()+1 > s.maxDepth {
		return s.errorf(s.pos, "exceeded max depth %d", s.maxDepth)
	}
	c := s.data[s.pos]
	switch {
	case c == '{' || c == '[':
		s.open.Push(c)
		s.pos++
		s.skipWS()
		if s.eof() {
			return s.unexpectedEOF()
		}
		if next := s.data[s.pos]; (c == '{' && next == '}') || (c == '[' && next == ']') {
			s.pos++
			s.open.Pop()
			return nil
		}
		if c == '{' {
			return s.member()
		}
		return s.value()
	case c == '"':
		return s.string()
	case c == '-' || isDigit(c):
		return s.number()
	case c == 't':
		return s.literal("true")
	case c == 'f':
		return s.literal("false")
	case c == 'n':
		return s.literal("null")
	default:
		return s.errorf(s.pos, "invalid character %q looking for beginning of value", c)
	}
}

// member scans `"key": value` of an object.
func (s *scanner) member() error {
	if s.eof() {
		return s.unexpectedEOF()
	}
	if c := s.data[s.pos]; c != '"' {
		return s.errorf(s.pos, "invalid character %q looking for beginning of object key string", c)
	}
	if err := s.string(); err != nil {
		return err
	}
	s.skipWS()
	if s.eof() {
		return s.unexpectedEOF()
	}
	if c := s.data[s.pos]; c != ':' {
		return s.errorf(s.pos, "invalid character %q after object key", c)
	}
	s.pos++
	s.skipWS()
	return s.value()
}

func (s *scanner) string() error {
	s.pos++ // opening quote
	for {
		if s.eof() {
			return s.unexpectedEOF()
		}
		c := s.data[s.pos]
		switch {
		case c == '"':
			s.pos++
			return nil
		case c < 0x20:
			return s.errorf(s.pos, "invalid character %q in string literal", c)
		case c == '\\':
			s.pos++
			if s.eof() {
				return s.unexpectedEOF()
			}
			switch esc := s.data[s.pos]; esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.pos++
			case 'u':
				s.pos++
				for i := 0; i < 4; i++ {
					if s.eof() {
						return s.unexpectedEOF()
					}
					if !isHex(s.data[s.pos]) {
						return s.errorf(s.pos, "invalid character %q in \\u hexadecimal character escape", s.data[s.pos])
					}
					s.pos++
				}
			default:
				return s.errorf(s.pos, "invalid character %q in string escape code", esc)
			}
		default:
			s.pos++
		}
	}
}

func (s *scanner) number() error {
	if s.data[s.pos] == '-' {
		s.pos++
	}
	// integer part: 0 | [1-9][0-9]*
	if s.eof() {
		return s.unexpectedEOF()
	}
	switch c := s.data[s.pos]; {
	case c == '0':
		s.pos++
	case isDigit(c):
		s.skipDigits()
	default:
		return s.errorf(s.pos, "invalid character %q in numeric literal", c)
	}
	// fraction
	if !s.eof() && s.data[s.pos] == '.' {
		s.pos++
		if err := s.digits(); err != nil {
			return err
		}
	}
	// exponent
	if !s.eof() && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		s.pos++
		if !s.eof() && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
			s.pos++
		}
		if err := s.digits(); err != nil {
			return err
		}
	}
	return nil
}

// digits scans one or more digits.
func (s *scanner) digits() error {
	if s.eof() {
		return s.unexpectedEOF()
	}
	if c := s.data[s.pos]; !isDigit(c) {
		return s.errorf(s.pos, "invalid character %q in numeric literal", c)
	}
	s.skipDigits()
	return nil
}

func (s *scanner) skipDigits() {
	for !s.eof() && isDigit(s.data[s.pos]) {
		s.pos++
	}
}

func (s *scanner) literal(lit string) error {
	for i := 0; i < len(lit); i++ {
		if s.eof() {
			return s.unexpectedEOF()
		}
		if c := s.data[s.pos]; c != lit[i] {
			return s.errorf(s.pos, "invalid character %q in literal %s (expecting %q)", c, lit, lit[i])
		}
		s.pos++
	}
	return nil
}

func (s *scanner) skipWS() {
	for !s.eof() && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *scanner) top() byte {
	v, _ := s.open.Peek()
	return v.(byte)
}

// unexpectedEOF reports truncated input at the first byte of the last
// non-whitespace character, or at 0 if there is none.
func (s *scanner) unexpectedEOF() error {
	end := len(s.data)
	for end > 0 && isSpace(s.data[end-1]) {
		end--
	}
	_, size := utf8.DecodeLastRune(s.data[:end])
	return s.errorf(end-size, reasonUnexpectedEOF)
}

// errorf reports a syntax error at byte offset pos, converted to characters.
func (s *scanner) errorf(pos int, format string, args ...any) error {
	return xerrors.E0002(utf8.RuneCount(s.data[:pos]), fmt.Sprintf(format, args...))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
