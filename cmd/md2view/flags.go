package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across invocations.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds theme-related flags.
type styleFlags struct {
	light    string
	dark     string
	darkMode bool
}

// viewFlags holds all flags for the render command.
type viewFlags struct {
	common  commonFlags
	output  string
	tocPath string
	timeout string
	style   styleFlags
}

// newFlagSet builds the pflag set bound to a viewFlags value.
func newFlagSet(flags *viewFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2view", flag.ContinueOnError)

	fs.StringVarP(&flags.common.config, "config", "c", "", "config name or path (YAML)")
	fs.BoolVarP(&flags.common.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.common.verbose, "verbose", "v", false, "verbose progress output")

	fs.StringVarP(&flags.output, "out", "o", "", "output HTML path (default: input with .html)")
	fs.StringVar(&flags.tocPath, "toc", "", "also write the anchor tree as JSON to this path")
	fs.StringVar(&flags.timeout, "timeout", "", "conversion timeout, e.g. 30s")

	fs.StringVar(&flags.style.light, "light-style", "", "chroma style for light mode")
	fs.StringVar(&flags.style.dark, "dark-style", "", "chroma style for dark mode")
	fs.BoolVar(&flags.style.darkMode, "dark", false, "render with the dark stylesheet")

	return fs
}

// parseFlags parses args (excluding the program name) and returns the flags
// plus remaining positional arguments.
func parseFlags(args []string) (*viewFlags, []string, error) {
	flags := &viewFlags{}
	fs := newFlagSet(flags)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
