package main

import (
	stdhtml "html"
	"strings"
)

// pageTemplate wraps the rendered fragment in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%TITLE%</title>
<style>%STYLE%</style>
</head>
<body class="markdown-body">
%BODY%
</body>
</html>`

// buildPage assembles the standalone document: title, inlined stylesheet,
// rendered body. CSS is sanitized so it cannot close its own <style> block.
func buildPage(title, css, body string) string {
	page := strings.ReplaceAll(pageTemplate, "%TITLE%", stdhtml.EscapeString(title))
	page = strings.ReplaceAll(page, "%STYLE%", sanitizeCSS(css))
	return strings.ReplaceAll(page, "%BODY%", body)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
