// Package theme manages the light and dark stylesheets for rendered
// documents. Both sheets are generated once at construction; a process-wide
// boolean selects which one is active. Toggling is a pure, idempotent
// enable/disable with no teardown.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2view/internal/assets"
)

// Default chroma styles for the two modes.
const (
	DefaultLightStyle = "github"
	DefaultDarkStyle  = "monokai"
)

// baseStyleName is the embedded stylesheet both sheets start from.
const baseStyleName = "base"

// ErrUnknownStyle indicates a chroma style name chroma does not register.
var ErrUnknownStyle = errors.New("unknown chroma style")

// Theme holds the two stylesheets and the dark-mode flag.
type Theme struct {
	light    string
	dark     string
	darkMode atomic.Bool
}

// New builds the light and dark stylesheets from the named chroma styles,
// each prefixed with the embedded base rules.
func New(lightStyle, darkStyle string) (*Theme, error) {
	base, err := assets.LoadStyle(baseStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading base stylesheet: %w", err)
	}

	light, err := chromaCSS(lightStyle)
	if err != nil {
		return nil, err
	}
	dark, err := chromaCSS(darkStyle)
	if err != nil {
		return nil, err
	}

	return &Theme{
		light: base + "\n" + light,
		dark:  base + "\n" + dark,
	}, nil
}

// SetDark sets the dark-mode flag. Safe for concurrent use.
func (t *Theme) SetDark(enabled bool) {
	t.darkMode.Store(enabled)
}

// Dark reports the current dark-mode flag.
func (t *Theme) Dark() bool {
	return t.darkMode.Load()
}

// StyleSheet returns the sheet matching the current dark-mode flag.
func (t *Theme) StyleSheet() string {
	if t.darkMode.Load() {
		return t.dark
	}
	return t.light
}

// chromaCSS writes the token classes of a registered chroma style as CSS.
// styles.Get falls back silently for unknown names, so the registry is
// checked directly.
func chromaCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing CSS for style %q: %w", name, err)
	}
	return buf.String(), nil
}
