package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "empty", input: "", want: Text},
		{name: "text", input: "text", want: Text},
		{name: "upper-json", input: "JSON", want: JSON},
		{name: "yaml", input: "yaml", want: YAML},
		{name: "unknown", input: "xml", want: UnknownFormat, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.json", JSON},
		{"dir/report.YAML", YAML},
		{"report.yml", YAML},
		{"report.txt", Text},
		{"report", UnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFormat(tt.filename))
		})
	}
}
