package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	md2view "github.com/alnah/go-md2view"
	"github.com/alnah/go-md2view/internal/config"
	"github.com/alnah/go-md2view/internal/fileutil"
	"github.com/alnah/go-md2view/internal/hints"
	"github.com/alnah/go-md2view/internal/theme"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs  = errors.New("usage: md2view [flags] <input>")
	ErrReadInput    = errors.New("failed to read input file")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrBadTimeout   = errors.New("invalid --timeout value")
	ErrConfigLoad   = errors.New("failed to load config")
	ErrUnknownStyle = errors.New("unknown style")
)

// run renders one input file to HTML (plus optional TOC JSON).
func run(flags *viewFlags, args []string, stderr io.Writer) error {
	if len(args) != 1 {
		return ErrInvalidArgs
	}
	inputPath := args[0]

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	opts, err := serviceOptions(flags, cfg)
	if err != nil {
		return err
	}

	svc, err := md2view.New(opts...)
	if err != nil {
		if errors.Is(err, md2view.ErrUnknownStyle) {
			return fmt.Errorf("%w: %v%s", ErrUnknownStyle, err, hints.ForUnknownStyle())
		}
		return err
	}

	raw, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if flags.common.verbose {
		fmt.Fprintf(stderr, "Rendering %s...\n", inputPath)
	}

	result, err := svc.Convert(context.Background(), md2view.Input{
		Text: string(raw),
		Name: filepath.Base(inputPath),
	})
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(flags.output, inputPath, cfg.Output.Dir)
	if err := fileutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	page := buildPage(filepath.Base(inputPath), svc.StyleSheet(), result.HTML)
	if err := os.WriteFile(outPath, []byte(page), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if tocPath := resolveTOCPath(flags.tocPath, outPath, cfg.Output.TOC); tocPath != "" {
		if err := writeTOC(tocPath, result.Anchors); err != nil {
			return err
		}
		if flags.common.verbose {
			fmt.Fprintf(stderr, "Wrote %s\n", tocPath)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(stderr, "Wrote %s (%d headings)\n", outPath, len(result.Headings))
	}
	return nil
}

// loadConfig loads the named config, or defaults when none was requested.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %v%s", ErrConfigLoad, err, hints.ForConfigNotFound())
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	return cfg, nil
}

// serviceOptions merges config file values and flags; flags win.
func serviceOptions(flags *viewFlags, cfg *config.Config) ([]md2view.Option, error) {
	light := cfg.Style.Light
	if flags.style.light != "" {
		light = flags.style.light
	}
	if light == "" {
		light = theme.DefaultLightStyle
	}

	dark := cfg.Style.Dark
	if flags.style.dark != "" {
		dark = flags.style.dark
	}
	if dark == "" {
		dark = theme.DefaultDarkStyle
	}

	opts := []md2view.Option{
		md2view.WithChromaStyles(light, dark),
		md2view.WithDarkMode(flags.style.darkMode || cfg.Style.DarkMode),
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadTimeout, flags.timeout)
		}
		opts = append(opts, md2view.WithTimeout(d))
	}

	return opts, nil
}

// resolveOutputPath picks the output file: explicit flag, else the input
// path with .html, placed in the configured output dir when one is set.
func resolveOutputPath(flagOut, inputPath, cfgDir string) string {
	if flagOut != "" {
		return flagOut
	}
	out := fileutil.ReplaceExtension(inputPath, ".html")
	if cfgDir != "" {
		out = filepath.Join(cfgDir, filepath.Base(out))
	}
	return out
}

// resolveTOCPath picks the TOC JSON destination, empty when disabled.
func resolveTOCPath(flagTOC, outPath string, cfgTOC bool) string {
	if flagTOC != "" {
		return flagTOC
	}
	if cfgTOC {
		return fileutil.ReplaceExtension(outPath, ".toc.json")
	}
	return ""
}

// writeTOC serializes the anchor forest as indented JSON.
func writeTOC(path string, anchors []*md2view.AnchorNode) error {
	if anchors == nil {
		anchors = []*md2view.AnchorNode{}
	}
	data, err := json.MarshalIndent(anchors, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
