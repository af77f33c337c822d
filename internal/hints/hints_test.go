package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound()
	if !strings.Contains(got, "\n  hint: ") {
		t.Errorf("ForConfigNotFound() = %q, want hint formatting", got)
	}
	if !strings.Contains(got, "--config") {
		t.Errorf("ForConfigNotFound() = %q, want --config suggestion", got)
	}
}

func TestForUnknownStyle(t *testing.T) {
	t.Parallel()

	got := ForUnknownStyle()
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("ForUnknownStyle() = %q, want hint formatting", got)
	}
	if !strings.Contains(got, "github") {
		t.Errorf("ForUnknownStyle() = %q, want style examples", got)
	}
}
