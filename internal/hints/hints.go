// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory.
func ForConfigNotFound() string {
	hints := []string{"use --config /path/to/file.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		hints = append(hints, "or create "+filepath.Join(dir, "go-md2view", "<name>.yaml"))
	}
	return formatHints(hints)
}

// ForUnknownStyle returns a hint for unrecognized chroma style names.
func ForUnknownStyle() string {
	return format("pick a registered chroma style, e.g. github, monokai, dracula")
}

// format renders a single hint line.
func format(text string) string {
	return "\n  hint: " + text
}

// formatHints renders multiple hint lines.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString(format(h))
	}
	return sb.String()
}
