package xerrors

import "fmt"

type ecode struct {
	code string
	desc string
}

func newEcode(code, desc string) *ecode {
	return &ecode{
		code: code,
		desc: desc,
	}
}

func (e *ecode) Error() string {
	if e.code == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.desc)
}

func (e *ecode) Is(target error) bool {
	t, ok := target.(*ecode)
	return ok && e.code == t.code
}

var (
	// ErrIO marks any failure to read an input document.
	ErrIO = newEcode("E0001", "failed to read input")
	// ErrSyntax marks any JSON grammar violation.
	ErrSyntax = newEcode("E0002", "invalid JSON syntax")
)

// IOError records a failure to open or read the file at Path. Its message is
// the operating system's diagnostic, kept verbatim.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes both ErrIO and the underlying OS error, so callers can test
// with errors.Is(err, ErrIO) as well as errors.Is(err, fs.ErrNotExist).
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// E0001 returns an IOError for path with a caller stack.
func E0001(path string, err error) error {
	return withStack(&IOError{Path: path, Err: err})
}

// SyntaxError reports a JSON grammar violation. Offset counts the characters
// (not bytes) that precede the point of failure.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Syntax at character %d", e.Offset)
	}
	return fmt.Sprintf("Syntax at character %d: %s", e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// E0002 returns a SyntaxError at offset with a caller stack.
func E0002(offset int, reason string) error {
	return withStack(&SyntaxError{Offset: offset, Reason: reason})
}
