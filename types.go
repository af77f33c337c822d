package md2view

import "time"

// DefaultName is assumed when an Input carries no name hint. The pseudo
// extension decides Markdown versus code-listing mode.
const DefaultName = "md"

// Input contains conversion parameters.
type Input struct {
	Text string // document content
	Name string // pseudo filename, e.g. "readme.md" or "snippet.ts" (optional)
}

// Anchor is one navigable heading record, created fresh on every conversion.
type Anchor struct {
	Title string `json:"title"` // visible heading text, inner markup stripped
	Href  string `json:"href"`  // "#" + canonical id
	Level int    `json:"level"` // heading depth, 1..6
}

// AnchorNode is an Anchor grouped with its children for TOC rendering.
// The forest is derived from the flat list on every conversion and is never
// mutated in place.
type AnchorNode struct {
	Anchor
	Children []*AnchorNode `json:"children"`
}

// Result is the outcome of one conversion.
type Result struct {
	HTML       string        // rendered document fragment
	Headings   []Anchor      // flat anchor list in document order
	Anchors    []*AnchorNode // grouped anchor forest
	IsMarkdown bool          // false when the input was rendered as a code listing
	DarkMode   bool          // dark-mode flag at conversion time
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	lightStyle string
	darkStyle  string
	darkMode   bool
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2view: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithChromaStyles selects the chroma styles used to build the light and
// dark stylesheets. New returns ErrUnknownStyle for names chroma does not
// register.
func WithChromaStyles(light, dark string) Option {
	return func(s *Service) {
		s.cfg.lightStyle = light
		s.cfg.darkStyle = dark
	}
}

// WithDarkMode sets the initial dark-mode flag.
func WithDarkMode(enabled bool) Option {
	return func(s *Service) {
		s.cfg.darkMode = enabled
	}
}
