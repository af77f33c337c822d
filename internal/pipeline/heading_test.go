package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		innerHTML  string
		authoredID string
		hasID      bool
		wantText   string
		wantID     string
	}{
		{
			name:      "plain text synthesizes lowercase hyphenated id",
			innerHTML: "Hello World",
			wantText:  "Hello World",
			wantID:    "hello-world",
		},
		{
			name:      "whitespace runs collapse to single hyphen",
			innerHTML: "Getting\t  Started",
			wantText:  "Getting\t  Started",
			wantID:    "getting-started",
		},
		{
			name:      "single wrapping tag is unwrapped",
			innerHTML: "<em> Emphasis </em>",
			wantText:  "Emphasis",
			wantID:    "emphasis",
		},
		{
			name:      "mixed inline markup is stripped",
			innerHTML: `a <code>b</code> c`,
			wantText:  "a b c",
			wantID:    "a-b-c",
		},
		{
			name:      "entities are decoded",
			innerHTML: "Q &amp; A",
			wantText:  "Q & A",
			wantID:    "q-&-a",
		},
		{
			name:       "authored id passes through unchanged without emoji",
			innerHTML:  "Setup",
			authoredID: "setup",
			hasID:      true,
			wantText:   "Setup",
			wantID:     "setup",
		},
		{
			name:       "emoji stripped from authored id",
			innerHTML:  "Launch 🚀",
			authoredID: "launch-🚀",
			hasID:      true,
			wantText:   "Launch 🚀",
			wantID:     "launch",
		},
		{
			name:       "zwj sequence fully removed",
			innerHTML:  "Team 👩‍💻",
			authoredID: "team-👩‍💻",
			hasID:      true,
			wantText:   "Team 👩‍💻",
			wantID:     "team",
		},
		{
			name:       "emoji-only authored id becomes empty",
			innerHTML:  "🎉",
			authoredID: "🎉",
			hasID:      true,
			wantText:   "🎉",
			wantID:     "",
		},
		{
			name:       "leading and trailing hyphens trimmed from authored id",
			innerHTML:  "X",
			authoredID: "-x-",
			hasID:      true,
			wantText:   "X",
			wantID:     "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, id := normalizeHeading(tt.innerHTML, tt.authoredID, tt.hasID)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCollectAnchors_RewritesHeadings(t *testing.T) {
	t.Parallel()

	html := `<h2 id="intro-😀" class="x">Intro</h2><p>body</p>`
	out, anchors := collectAnchors(html)

	require.Len(t, anchors, 1)
	assert.Equal(t, Anchor{Title: "Intro", Href: "#intro", Level: 2}, anchors[0])

	assert.Contains(t, out, `<h2 id="intro" class="markdown-heading x">`)
	assert.Contains(t, out, `<a id="user-content-intro" class="heading-anchor" name="intro" href="#intro" aria-hidden="true"></a>`)
	assert.Contains(t, out, "<span>Intro</span>")
	assert.Contains(t, out, "<p>body</p>")
}

func TestCollectAnchors_AuthoredClassMerged(t *testing.T) {
	t.Parallel()

	// An authored class joins the fixed one in a single class attribute.
	out, _ := collectAnchors(`<h3 class="fancy wide">Styled</h3>`)
	assert.Contains(t, out, `<h3 id="styled" class="markdown-heading fancy wide">`)
	assert.Equal(t, 1, strings.Count(out, "class=\"markdown-heading"))
}

func TestCollectAnchors_IDBetweenAttributesRemovedCleanly(t *testing.T) {
	t.Parallel()

	out, anchors := collectAnchors(`<h2 data-a="1" id="x" data-b="2">T</h2>`)
	require.Len(t, anchors, 1)
	assert.Equal(t, "#x", anchors[0].Href)
	assert.Contains(t, out, `<h2 id="x" class="markdown-heading" data-a="1" data-b="2">`)
}

func TestCollectAnchors_DocumentOrder(t *testing.T) {
	t.Parallel()

	html := `<h1>A</h1><h2>B</h2><h1>C</h1>`
	_, anchors := collectAnchors(html)

	require.Equal(t, []Anchor{
		{Title: "A", Href: "#a", Level: 1},
		{Title: "B", Href: "#b", Level: 2},
		{Title: "C", Href: "#c", Level: 1},
	}, anchors)
}

func TestCollectAnchors_CollidingIDsKept(t *testing.T) {
	t.Parallel()

	// Identical heading text yields identical ids; nothing deduplicates them.
	html := `<h2>Setup</h2><p>x</p><h2>Setup</h2>`
	_, anchors := collectAnchors(html)

	require.Len(t, anchors, 2)
	assert.Equal(t, anchors[0].Href, anchors[1].Href)
	assert.Equal(t, "#setup", anchors[0].Href)
}

func TestCollectAnchors_MalformedHeadingsUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
	}{
		{name: "mismatched close level", html: `<h2>broken</h3>`},
		{name: "out of range level", html: `<h7>nope</h7>`},
		{name: "unclosed heading", html: `<h2>dangling`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, anchors := collectAnchors(tt.html)
			assert.Equal(t, tt.html, out)
			assert.Empty(t, anchors)
		})
	}
}

func TestCollectAnchors_EmptyIDGivesBareHashHref(t *testing.T) {
	t.Parallel()

	_, anchors := collectAnchors(`<h1 id="😀">Party</h1>`)
	require.Len(t, anchors, 1)
	assert.Equal(t, "#", anchors[0].Href)
}

func TestCollectAnchors_LevelJumpTolerated(t *testing.T) {
	t.Parallel()

	_, anchors := collectAnchors(`<h1>Top</h1><h4>Deep</h4>`)
	require.Len(t, anchors, 2)
	assert.Equal(t, 4, anchors[1].Level)
}
