// Package md2view renders Markdown (or, for non-Markdown file extensions,
// fenced source code) into sanitized HTML plus a hierarchical table of
// contents derived from the document headings.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc, err := md2view.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Convert(ctx, md2view.Input{
//	    Text: "# Hello\n\nWorld",
//	    Name: "readme.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//
// The result carries the rendered HTML, the flat heading list in document
// order (result.Headings), the grouped anchor forest for TOC rendering
// (result.Anchors), and the mode flags (result.IsMarkdown, result.DarkMode).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Preprocessing (BOM strip, line ending normalization)
//  2. Markdown to HTML via Goldmark (GFM, custom code and link renderers)
//  3. Heading post-processing (canonical ids, anchor collection)
//  4. Anchor tree derivation from the flat heading list
//
// Inputs whose name hint does not carry a Markdown extension are routed
// through the same path as a single highlighted code listing.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := md2view.New(
//	    md2view.WithTimeout(10 * time.Second),
//	    md2view.WithChromaStyles("github", "monokai"),
//	    md2view.WithDarkMode(true),
//	)
//
// # Trust Model
//
// The rendered HTML is as safe as Goldmark's output: raw HTML blocks are
// suppressed and code is escaped. The caller is responsible for the context
// the HTML is inserted into; no additional sanitization pass is performed.
package md2view
