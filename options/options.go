package options

import (
	"github.com/tableauio/jsonsum/format"
)

// Options is the configuration document of the jsonsum command, usually
// loaded from a YAML file. Command-line flags override its values.
type Options struct {
	Log    *LogOption    `yaml:"log"`    // Log options.
	Sum    *SumOption    `yaml:"sum"`    // Sum options.
	Output *OutputOption `yaml:"output"` // Output options.
}

type LogOption struct {
	// Log level: DEBUG, INFO, WARN, ERROR.
	//
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log mode: SIMPLE, FULL.
	//
	// Default: "FULL".
	Mode string `yaml:"mode"`
	// Log filename: set this if you want to write log messages to files.
	//
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	//
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

type SumOption struct {
	// Key whose numeric values are summed.
	//
	// Default: "".
	Key string `yaml:"key"`
	// Maximum nesting depth of JSON values. Zero means the parser's limit.
	//
	// Default: 0.
	MaxDepth int `yaml:"maxDepth"`
	// Number of files summed at the same time. Zero means the number of
	// CPUs.
	//
	// Default: 0.
	Concurrency int `yaml:"concurrency"`
	// File extension of the documents collected when an input path is a
	// directory.
	//
	// Default: ".json".
	Ext string `yaml:"ext"`
}

type OutputOption struct {
	// Report format: text, json, or yaml.
	//
	// Default: "text".
	Format format.Format `yaml:"format"`
	// Output pretty format of JSON, with multiline and indent.
	//
	// Default: false.
	Pretty bool `yaml:"pretty"`
}

// NewDefault returns a default Options.
func NewDefault() *Options {
	return &Options{
		Log: &LogOption{
			Level: "INFO",
			Mode:  "FULL",
			Sink:  "CONSOLE",
		},
		Sum: &SumOption{
			Ext: format.JSONExt,
		},
		Output: &OutputOption{
			Format: format.Text,
		},
	}
}
