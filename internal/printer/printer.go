package printer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0644

// Printer accumulates lines of text.
type Printer struct {
	buf bytes.Buffer
}

// New creates a new printer.
func New() *Printer {
	return &Printer{}
}

// P prints a line to the printer. It converts each parameter to a
// string following the same rules as fmt.Print. It never inserts spaces
// between parameters.
func (p *Printer) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&p.buf, x)
	}
	fmt.Fprintln(&p.buf)
}

// Bytes returns the bytes content of printer.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

// String returns the string content of printer.
func (p *Printer) String() string {
	return p.buf.String()
}

// Save saves the printer content to a file.
func (p *Printer) Save(filename string) error {
	return Save(filename, p.Bytes())
}

// Save writes content to filename, creating its parent directory if needed.
func Save(filename string, content []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, content, filePerm)
}
