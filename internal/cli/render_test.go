package cli

import (
	"testing"
)

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "json", "dot", "text", "pdf", "png"}, false},
		{[]string{"svg", "gif"}, true},
	}
	for _, tt := range tests {
		err := validateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		format  string
		want    string
	}{
		{"derived", "", []string{"svg"}, "svg", "board.svg"},
		{"json suffix", "", []string{"json"}, "json", "board.layout.json"},
		{"explicit single", "out/x.svg", []string{"svg"}, "svg", "out/x.svg"},
		{"base path", "out/x.svg", []string{"svg", "dot"}, "dot", "out/x.dot"},
		{"base without ext", "out/x", []string{"svg", "text"}, "text", "out/x.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &renderOpts{output: tt.output, formats: tt.formats}
			if got := outputPath("board.toml", opts, tt.format); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
