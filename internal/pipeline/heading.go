package pipeline

import (
	"fmt"
	stdhtml "html"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled patterns for heading post-processing.
var (
	// headingTagPattern matches h1-h6 tags with a non-greedy inner body.
	// Captures: 1=open level, 2=attribute string, 3=inner HTML, 4=close level.
	// Go regexps have no backreferences, so open/close levels are compared
	// after the match; mismatches are left untouched.
	headingTagPattern = regexp.MustCompile(`(?is)<h([1-6])([^>]*)>(.*?)</h([1-6])>`)

	// headingIDPattern matches an id="..." attribute inside the tag,
	// anchored to the whitespace that precedes it so removing the match
	// leaves neighboring attributes' own spacing intact.
	headingIDPattern = regexp.MustCompile(`(?i)\s+id="([^"]*)"`)

	// headingClassPattern matches a class="..." attribute inside the tag.
	headingClassPattern = regexp.MustCompile(`(?i)\s+class="([^"]*)"`)

	// wrappingTagPattern matches content consisting of a single inline
	// element wrapping the entire text.
	wrappingTagPattern = regexp.MustCompile(`(?is)^<([a-z][a-z0-9]*)\b[^>]*>(.*)</([a-z][a-z0-9]*)>$`)

	// htmlTagPattern matches HTML tags for stripping from heading text.
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	// whitespaceRun matches runs of whitespace for slug synthesis.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// emojiPattern matches Unicode emoji and the joiners that compose them:
	// regional indicators, pictographs, emoticons, transport, supplemental
	// symbols, misc symbols and dingbats, variation selector-16, ZWJ, and
	// the keycap combiner.
	emojiPattern = regexp.MustCompile(`[` +
		`\x{1F1E6}-\x{1F1FF}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F700}-\x{1F77F}` +
		`\x{1F900}-\x{1F9FF}` +
		`\x{1FA00}-\x{1FAFF}` +
		`\x{2300}-\x{23FF}` +
		`\x{2600}-\x{26FF}` +
		`\x{2700}-\x{27BF}` +
		`\x{2B00}-\x{2BFF}` +
		`\x{FE0F}` +
		`\x{200D}` +
		`\x{20E3}` +
		`]`)
)

// normalizeHeading derives the visible text and canonical id for one heading.
//
// The clean text unwraps a single inline element spanning the whole content
// (keeping its inner text, trimmed); otherwise all tag markup is stripped in
// a single non-recursive pass. Entities are decoded so the text is not
// double-encoded downstream.
//
// When the parser authored an id, emoji are stripped from it and the result
// is trimmed of whitespace and hyphens; stripping may legitimately yield an
// empty id (href becomes a bare "#"). Without an authored id, one is
// synthesized from the clean text: lower-cased, whitespace runs collapsed to
// single hyphens.
func normalizeHeading(innerHTML, authoredID string, hasAuthoredID bool) (cleanText, id string) {
	cleanText = headingText(innerHTML)

	if hasAuthoredID {
		id = emojiPattern.ReplaceAllString(authoredID, "")
		id = strings.Trim(id, " \t\n-")
		return cleanText, id
	}

	id = strings.ToLower(cleanText)
	id = whitespaceRun.ReplaceAllString(id, "-")
	return cleanText, id
}

// headingText extracts the visible text from heading inner HTML.
func headingText(innerHTML string) string {
	if m := wrappingTagPattern.FindStringSubmatch(innerHTML); m != nil &&
		strings.EqualFold(m[1], m[3]) && !strings.Contains(m[2], "<") {
		return strings.TrimSpace(stdhtml.UnescapeString(m[2]))
	}
	stripped := htmlTagPattern.ReplaceAllString(innerHTML, "")
	return strings.TrimSpace(stdhtml.UnescapeString(stripped))
}

// collectAnchors locates every heading tag in the rendered HTML, computes
// its canonical id, and rewrites the tag to carry that id plus an inline
// anchor-link control. It returns the rewritten HTML together with the flat
// anchor list in document order; content outside heading tags passes through
// unchanged. Ids are not deduplicated: distinct headings with identical text
// produce identical hrefs.
func collectAnchors(htmlContent string) (string, []Anchor) {
	var anchors []Anchor

	out := headingTagPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		m := headingTagPattern.FindStringSubmatch(match)
		if m[1] != m[4] {
			// Open/close level mismatch: not a heading this pass understands.
			return match
		}

		level, _ := strconv.Atoi(m[1])
		attrs := m[2]
		inner := m[3]

		var authoredID string
		var hasID bool
		if idm := headingIDPattern.FindStringSubmatch(attrs); idm != nil {
			authoredID = idm[1]
			hasID = true
			attrs = headingIDPattern.ReplaceAllString(attrs, "")
		}

		cleanText, id := normalizeHeading(inner, authoredID, hasID)
		anchors = append(anchors, Anchor{
			Title: cleanText,
			Href:  "#" + id,
			Level: level,
		})

		// Merge an authored class into the fixed one; a second class
		// attribute on the rebuilt tag would be silently dropped by the
		// browser.
		classes := "markdown-heading"
		if cm := headingClassPattern.FindStringSubmatch(attrs); cm != nil {
			if extra := strings.TrimSpace(cm[1]); extra != "" {
				classes += " " + extra
			}
			attrs = headingClassPattern.ReplaceAllString(attrs, "")
		}

		escapedID := stdhtml.EscapeString(id)
		var sb strings.Builder
		fmt.Fprintf(&sb, `<h%d id="%s" class="%s"%s>`, level, escapedID, classes, attrs)
		fmt.Fprintf(&sb, `<a id="user-content-%s" class="heading-anchor" name="%s" href="#%s" aria-hidden="true"></a>`,
			escapedID, escapedID, escapedID)
		sb.WriteString("<span>" + inner + "</span>")
		fmt.Fprintf(&sb, "</h%d>", level)
		return sb.String()
	})

	return out, anchors
}
