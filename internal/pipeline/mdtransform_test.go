package pipeline

import "testing"

func TestStripLeadingBOM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "BOM removed", input: "\uFEFF# Hi", want: "# Hi"},
		{name: "zero-width space removed", input: "\u200Btext", want: "text"},
		{name: "only the first rune is considered", input: "a\uFEFFb", want: "a\uFEFFb"},
		{name: "single strip only", input: "\uFEFF\uFEFFx", want: "\uFEFFx"},
		{name: "plain text untouched", input: "hello", want: "hello"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripLeadingBOM(tt.input); got != tt.want {
				t.Errorf("stripLeadingBOM(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "CRLF", input: "a\r\nb", want: "a\nb"},
		{name: "bare CR", input: "a\rb", want: "a\nb"},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
		{name: "already LF", input: "a\nb", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "three newlines compressed", input: "a\n\n\nb", want: "a\n\nb"},
		{name: "many newlines compressed", input: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "double newline kept", input: "a\n\nb", want: "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := compressBlankLines(tt.input); got != tt.want {
				t.Errorf("compressBlankLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
