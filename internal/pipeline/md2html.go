package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// markdownLanguage is the pseudo extension that selects Markdown mode.
const markdownLanguage = "md"

// Document is the outcome of one conversion pass.
type Document struct {
	HTML       string
	Anchors    []Anchor // flat, document order
	IsMarkdown bool
}

// Converter converts Markdown (or fenced source code) to HTML using
// goldmark, with the code-block decorator and link rewriter substituted for
// the default renderers.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM extensions and the custom
// code and link renderers.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (required for TOC)
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used; raw HTML blocks are
			// suppressed so the output stays safe to inject.
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeBlockRenderer(), 200),
				util.Prioritized(&linkRenderer{}, 200),
			),
		),
	)
	return &Converter{md: md}
}

// Convert renders raw content to HTML and collects heading anchors.
// Non-Markdown inputs (per the name hint's pseudo extension) are wrapped in
// a single fenced code block so they render as a highlighted listing.
// Empty input short-circuits to an empty Document without invoking the parser.
func (c *Converter) Convert(ctx context.Context, raw, name string) (*Document, error) {
	lang := languageFromName(name)
	isMarkdown := strings.EqualFold(lang, markdownLanguage)

	if raw == "" {
		return &Document{IsMarkdown: isMarkdown}, nil
	}

	content := stripLeadingBOM(raw)
	if isMarkdown {
		content = normalizeLineEndings(content)
		content = compressBlankLines(content)
	} else {
		content = fenceWrap(content, lang)
	}

	htmlContent, err := c.toHTML(ctx, content)
	if err != nil {
		return nil, err
	}

	htmlContent, anchors := collectAnchors(htmlContent)
	return &Document{
		HTML:       htmlContent,
		Anchors:    anchors,
		IsMarkdown: isMarkdown,
	}, nil
}

// toHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *Converter) toHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		pctx := parser.NewContext(parser.WithIDs(headingIDs{}))
		if err := c.md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// headingIDs replaces goldmark's auto heading ID generator, which drops every
// multi-byte rune. Ids here keep the full Unicode text: lower-cased, trimmed,
// whitespace runs collapsed to single hyphens. Accents and emoji survive for
// the post-processing pass to normalize. Ids are not deduplicated.
type headingIDs struct{}

func (headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	id := strings.ToLower(strings.TrimSpace(string(value)))
	id = whitespaceRun.ReplaceAllString(id, "-")
	return []byte(id)
}

func (headingIDs) Put([]byte) {}

// languageFromName derives a highlight language from the pseudo filename:
// the first extension token, defaulting to "md" when there is none.
// Vue single-file components highlight best as HTML.
func languageFromName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return markdownLanguage
	}
	lang := parts[1]
	if strings.EqualFold(lang, "vue") {
		return "html"
	}
	return lang
}

// fenceWrap synthesizes a Markdown document consisting of a single fenced
// code block holding the raw text verbatim.
func fenceWrap(code, lang string) string {
	return "```" + lang + "\n" + code + "\n```\n"
}
