package xerrors

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

const unknown = "unknown"

// maxPrintedFrames limits how many frames "%+v" prints for an error.
const maxPrintedFrames = 3

// Frame represents a program counter inside a stack frame.
// Interpreted as a uintptr, its value is the program counter + 1.
type Frame uintptr

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

func (f Frame) location() (file string, line int, name string) {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return unknown, 0, unknown
	}
	file, line = fn.FileLine(f.pc())
	return file, line, fn.Name()
}

// trimmedFile keeps only the leaf directory and file name of the caller,
// prefixed with '@'.
//
// Refer to https://github.com/uber-go/zap/blob/v1.27.1/zapcore/entry.go#L100
func (f Frame) trimmedFile() string {
	// runtime.Caller reports forward slashes even on Windows.
	file, _, _ := f.location()
	idx := strings.LastIndexByte(file, '/')
	if idx == -1 {
		return file
	}
	idx = strings.LastIndexByte(file[:idx], '/')
	if idx == -1 {
		return file
	}
	return "@" + file[idx+1:]
}

// Format formats the frame according to the fmt.Formatter interface.
//
//	%s    trimmed source file
//	%d    source line
//	%n    function name
//	%v    equivalent to %s:%d
func (f Frame) Format(s fmt.State, verb rune) {
	_, line, name := f.location()
	switch verb {
	case 's':
		_, _ = io.WriteString(s, f.trimmedFile())
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, funcname(name))
	case 'v':
		f.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		f.Format(s, 'd')
	}
}

// stack represents a stack of program counters.
type stack []uintptr

func (s *stack) Format(st fmt.State, verb rune) {
	if verb != 'v' || !st.Flag('+') {
		return
	}
	for i, pc := range *s {
		if i >= maxPrintedFrames {
			break
		}
		_, _ = fmt.Fprintf(st, " %+v", Frame(pc))
	}
}

// The argument skip is the number of stack frames to skip before recording in
// pc, skip == 0 means the caller of callers is the first frame shown.
func callers(skip int) *stack {
	const depth = 32
	var pcs [depth]uintptr
	// skip runtime.Callers and this function itself
	skip += 2
	n := runtime.Callers(skip, pcs[:])
	var st stack = pcs[0:n]
	return &st
}

// funcname removes the path prefix component of a function's name reported by func.Name().
func funcname(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
