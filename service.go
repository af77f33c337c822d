package md2view

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-md2view/internal/pipeline"
	"github.com/alnah/go-md2view/internal/theme"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg       serviceConfig
	converter *pipeline.Converter
	theme     *theme.Theme
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithChromaStyles).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			lightStyle: theme.DefaultLightStyle,
			darkStyle:  theme.DefaultDarkStyle,
		},
		converter: pipeline.NewConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	th, err := theme.New(s.cfg.lightStyle, s.cfg.darkStyle)
	if err != nil {
		if errors.Is(err, theme.ErrUnknownStyle) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownStyle, err)
		}
		return nil, err
	}
	th.SetDark(s.cfg.darkMode)
	s.theme = th

	return s, nil
}

// Convert runs the full pipeline: preprocess, render, collect anchors,
// derive the anchor forest. The context is used for cancellation; the
// configured timeout bounds the whole call.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	name := input.Name
	if name == "" {
		name = DefaultName
	}

	doc, err := s.converter.Convert(ctx, input.Text, name)
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	flat := toAnchors(doc.Anchors)
	return &Result{
		HTML:       doc.HTML,
		Headings:   flat,
		Anchors:    toAnchorForest(pipeline.BuildAnchorTree(doc.Anchors)),
		IsMarkdown: doc.IsMarkdown,
		DarkMode:   s.theme.Dark(),
	}, nil
}

// SetDarkMode toggles the process-wide dark-mode flag. Each call is an
// independent, idempotent enable/disable.
func (s *Service) SetDarkMode(enabled bool) {
	s.theme.SetDark(enabled)
}

// DarkMode reports the current dark-mode flag.
func (s *Service) DarkMode() bool {
	return s.theme.Dark()
}

// StyleSheet returns the stylesheet matching the current dark-mode flag:
// the embedded base rules plus the generated chroma token classes.
func (s *Service) StyleSheet() string {
	return s.theme.StyleSheet()
}

// toAnchors converts internal pipeline anchors to the public type.
func toAnchors(in []pipeline.Anchor) []Anchor {
	if in == nil {
		return nil
	}
	out := make([]Anchor, len(in))
	for i, a := range in {
		out[i] = Anchor(a)
	}
	return out
}

// toAnchorForest converts the internal anchor forest to the public type.
func toAnchorForest(in []*pipeline.AnchorNode) []*AnchorNode {
	if in == nil {
		return nil
	}
	out := make([]*AnchorNode, len(in))
	for i, n := range in {
		out[i] = &AnchorNode{
			Anchor:   Anchor(n.Anchor),
			Children: toAnchorForest(n.Children),
		}
	}
	return out
}
