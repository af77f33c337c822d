// Package pipeline implements the markdown-to-HTML rendering pipeline:
// Goldmark conversion with custom code-block and link renderers, heading
// post-processing with canonical id derivation, and anchor tree building.
package pipeline
