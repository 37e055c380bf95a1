package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

// Report format
const (
	UnknownFormat Format = "unknown"
	Text          Format = "text"
	JSON          Format = "json"
	YAML          Format = "yaml"
)

// File format extension
const (
	UnknownExt string = ".unknown"
	TextExt    string = ".txt"
	JSONExt    string = ".json"
	YAMLExt    string = ".yaml"
)

// Parse parses a format name case-insensitively. An empty name means Text.
func Parse(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return UnknownFormat, fmt.Errorf("unknown format: %q", name)
	}
}

// GetFormat returns the file's format by filename extension.
func GetFormat(filename string) Format {
	return Ext2Format(filepath.Ext(filename))
}

// Ext2Format maps a filename extension to a report format.
func Ext2Format(ext string) Format {
	switch strings.ToLower(ext) {
	case TextExt:
		return Text
	case JSONExt:
		return JSON
	case YAMLExt, ".yml":
		return YAML
	default:
		return UnknownFormat
	}
}

