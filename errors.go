package md2view

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownStyle   = errors.New("unknown highlight style")
)
