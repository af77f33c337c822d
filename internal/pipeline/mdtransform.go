package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// bomClassRunes are zero-width or BOM-class control characters that pasted
// content sometimes starts with: BOM, zero-width space, LRM, RLM. Written as
// escapes; a literal U+FEFF is only legal as a file's first code point.
const bomClassRunes = "\uFEFF\u200B\u200E\u200F"

// stripLeadingBOM removes a single leading BOM-class rune, if present.
func stripLeadingBOM(content string) string {
	r, size := utf8.DecodeRuneInString(content)
	if r != utf8.RuneError && strings.ContainsRune(bomClassRunes, r) {
		return content[size:]
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
