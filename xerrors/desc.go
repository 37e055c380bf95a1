package xerrors

import (
	"errors"
	"fmt"
	"strings"
)

// desc keys for bookkeeping
const (
	KeyPath   = "Path"   // input file path
	KeySearch = "Search" // search key
	KeyOffset = "Offset" // syntax error offset in characters
	KeyReason = "Reason" // root cause

	// private keys below
	keyErrCode = "ErrCode"
	keyErrDesc = "ErrDesc"
)

// ordered keys for debugging
var keys = []string{
	KeyPath,
	KeySearch,
	KeyOffset,

	keyErrCode,
	keyErrDesc,
	KeyReason,
}

// Desc is a flattened, printable view of an error chain.
type Desc struct {
	err    error
	fields map[string]any
}

// NewDesc collects the key-value pairs attached by WrapKV along err's chain,
// together with its ecode and root cause. It returns nil if err is nil.
func NewDesc(err error) *Desc {
	if err == nil {
		return nil
	}
	desc := &Desc{
		err:    err,
		fields: map[string]any{},
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		w, ok := e.(*withMessage)
		if !ok {
			continue
		}
		for i := 0; i+1 < len(w.kvs); i += 2 {
			key := fmt.Sprint(w.kvs[i])
			// outer layers win
			if _, ok := desc.fields[key]; !ok {
				desc.fields[key] = w.kvs[i+1]
			}
		}
	}
	var ec *ecode
	if errors.As(err, &ec) {
		desc.fields[keyErrCode] = ec.code
		desc.fields[keyErrDesc] = ec.desc
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		desc.fields[KeyOffset] = serr.Offset
	}
	if cause := Cause(err); cause != nil && cause.Error() != "" {
		desc.fields[KeyReason] = cause.Error()
	}
	return desc
}

// GetValue returns the string form of the field, or "" if absent.
func (d *Desc) GetValue(key string) string {
	val, ok := d.fields[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(val)
}

// ErrCode returns the ecode of the described error, e.g.: "E0002".
func (d *Desc) ErrCode() string {
	return d.GetValue(keyErrCode)
}

// String renders the description for end users.
func (d *Desc) String() string {
	if d.ErrCode() == "" {
		return fmt.Sprintf("Error: %s", d.err.Error())
	}
	return fmt.Sprintf("Error: %s: %s\nDebugging: \n%s", d.ErrCode(), d.GetValue(keyErrDesc), d.DebugString())
}

func (d *Desc) DebugString() string {
	var sb strings.Builder
	for _, key := range keys {
		val, ok := d.fields[key]
		if ok {
			sb.WriteString(fmt.Sprintf("\t%s: %v\n", key, val))
		}
	}
	return sb.String()
}
