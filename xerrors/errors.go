//   Error handling model:
// 			1. cause error(nil means no cause) is wrapped by base error with caller stack
//          2. all errors contain only one caller stack
//          3. withMessage is an error which has a message and optional key-value pairs
//          4. domain errors (IOError, SyntaxError) unwrap to an ecode sentinel,
//             so errors.Is(err, ErrIO) and errors.Is(err, ErrSyntax) hold
//             through any number of withMessage layers
//
//                                 +---------+
//                                 |  cause  |  (IOError, SyntaxError, ...)
//                                 +----+----+
//                                      ^
//                                      |
//                                 +----------+
//                                 |   base   |
//                                 |  (stack) |
//                                 +----+-----+
//                                      ^
//                                      |
//                               +------+------+
//                               | withMessage |
//                               +------+------+
//                                      |
//                               +------+------+
//                               | withMessage |
//                               +------+------+
//                                      |

package xerrors

import (
	"errors"
	"fmt"
	"io"
)

// base is an error which has a cause error and caller stack
type base struct {
	cause error
	stack *stack
}

func (b *base) Unwrap() error {
	return b.cause
}

func (b *base) Error() string {
	if b.cause == nil {
		return ""
	}
	return b.cause.Error()
}

func (b *base) Format(s fmt.State, verb rune) {
	var content string
	if b.cause != nil {
		content += b.cause.Error()
	}

	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, content)
			if b.stack != nil {
				b.stack.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, content)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", content)
	}
}

// withMessage is an error that has a cause error and message.
type withMessage struct {
	cause   error
	message string
	kvs     []any // key-value pairs rendered into message
}

func (w *withMessage) Error() string {
	content := w.message
	if w.cause != nil {
		cause := w.cause.Error()
		if content != "" && cause != "" {
			content += ": "
		}
		// don't use %+v to avoid printing duplicated stack
		content += cause
	}
	return content
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (w *withMessage) Unwrap() error { return w.cause }

func (w *withMessage) Cause() error { return w.cause }

func (w *withMessage) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			content := w.message
			if w.cause != nil {
				cause := fmt.Sprintf("%+v", w.cause)
				if content != "" && cause != "" {
					content += ": "
				}
				content += cause
			}
			_, _ = io.WriteString(s, content)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, w.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", w.Error())
	}
}

// withStack add a caller stack to given error,
// but directly return if stack already wrapped.
// The stack starts at the caller of the exported function calling withStack.
func withStack(err error) error {
	if err == nil {
		return nil
	}
	var berr *base
	if errors.As(err, &berr) {
		if berr.stack == nil {
			berr.stack = callers(2)
		}
		return err
	}
	return &base{
		cause: err,
		stack: callers(2),
	}
}

func combineKV(keysAndValues ...any) string {
	var msg string
	for i := 0; i < len(keysAndValues); i += 2 {
		if i == len(keysAndValues)-1 {
			panic("invalid Key-Value pairs: odd number")
		}
		key, val := keysAndValues[i], keysAndValues[i+1]
		msg += fmt.Sprintf("|%v: %v", key, val)
	}
	return msg
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error.
// Errorf also records the stack trace at the point it was called.
func Errorf(format string, args ...any) error {
	return &withMessage{
		cause:   &base{stack: callers(1)},
		message: fmt.Sprintf(format, args...),
	}
}

// Wrapf returns an error annotating err with a stack trace
// at the point Wrapf is called, and the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	err = withStack(err)
	return &withMessage{
		cause:   err,
		message: fmt.Sprintf(format, args...),
	}
}

// WrapKV formats the key-value pairs as `[|key: value]...` string and
// annotates err with it.
// WrapKV also records the stack trace at the point it was called.
func WrapKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	err = withStack(err)
	return &withMessage{
		cause:   err,
		message: combineKV(keysAndValues...),
		kvs:     keysAndValues,
	}
}

// Wrap annotates err with a stack trace at the point Wrap was called.
// If err is nil, Wrap returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return withStack(err)
}

// Cause returns the underlying cause of the error, if possible.
// An error value has a cause if it implements the following
// interface:
//
//	type causer interface {
//	       Cause() error
//	}
//
// base is skipped as well, so the returned error is the one originally
// wrapped. If the error is nil, nil will be returned without further
// investigation.
type xcauser interface {
	Cause() error
}

func Cause(err error) error {
	for err != nil {
		if b, ok := err.(*base); ok {
			if b.cause == nil {
				break
			}
			err = b.cause
			continue
		}
		cause, ok := err.(xcauser)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return err
}

// Code returns the ecode (e.g.: "E0002") of err, or "" if err is not
// associated with one.
func Code(err error) string {
	var e *ecode
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}
