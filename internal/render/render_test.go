package render_test

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternhq/lantern/internal/deck"
	"github.com/lanternhq/lantern/internal/render"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

const testTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>{{.Styles}}</style>
</head>
<body>
<main class="deck">{{.Slides}}</main>
<script>{{.Script}}</script>
</body>
</html>`

func TestRenderBasicDeck(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("# My Talk\n\nHello **world**\n\n---\n\nBye"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))

	require.NoError(t, err)
	assert.Equal(t, "My Talk", art.Title)
	assert.Equal(t, 2, art.Slides)
	assert.Empty(t, art.Warnings)

	html := string(art.HTML)
	assert.Contains(t, html, "<title>My Talk</title>")
	assert.Contains(t, html, `data-ordinal="1"`)
	assert.Contains(t, html, `data-ordinal="2"`)
	assert.Contains(t, html, `<h2 class="slide-heading">My Talk</h2>`)
	assert.Contains(t, html, "<p>Hello <strong>world</strong></p>")
	assert.Contains(t, html, "<p>Bye</p>")
	assert.Contains(t, html, ".slide-counter", "theme css must be embedded")
	assert.Contains(t, html, "deck-ready", "nav script must be embedded")
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	source := []byte("# Same\n\ntext\n\n```go\nx := 1\n```\n\n---\n\n```\n+--+\n```")
	r := render.New(render.Options{})

	first, err := r.Render(deck.Parse(source), []byte(testTemplate))
	require.NoError(t, err)
	second, err := r.Render(deck.Parse(source), []byte(testTemplate))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.HTML, second.HTML), "same inputs must produce identical bytes")
}

func TestRenderNotesStayOutOfTheBody(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("# S\n\nvisible\n\n::: notes\nonly for the speaker\n:::"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))
	require.NoError(t, err)

	html := string(art.HTML)
	bodyPattern := regexp.MustCompile(`(?s)<div class="slide-body">.*?</div>`)
	body := bodyPattern.FindString(html)
	require.NotEmpty(t, body)

	assert.NotContains(t, body, "only for the speaker")
	assert.Contains(t, html, `<aside class="notes" hidden>`)
	assert.Contains(t, html, "<p>only for the speaker</p>")
}

func TestRenderCodeFragments(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("```go\nfunc main() {}\n```"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))
	require.NoError(t, err)

	html := string(art.HTML)
	assert.Contains(t, html, `class="chroma"`, "code must be highlighted")
	assert.Contains(t, html, ">func<")
	assert.Empty(t, art.Warnings)
}

func TestRenderUnknownLanguageDegrades(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("```blub\nfrobnicate\n```"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))
	require.NoError(t, err)

	require.Len(t, art.Warnings, 1)
	assert.Contains(t, art.Warnings[0], `"blub"`)
	assert.Contains(t, string(art.HTML), "frobnicate")
}

func TestRenderFigureEscapes(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("```\n<script>alert(1)</script> --> [ok]\n```"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))
	require.NoError(t, err)

	html := string(art.HTML)
	assert.Contains(t, html, `<pre class="figure">`)
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderTitlePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		option string
		want   string
	}{
		{"option beats deck heading", "# From Deck\nx", "From Option", "From Option"},
		{"deck heading as fallback", "# From Deck\nx", "", "From Deck"},
		{"placeholder when nothing is known", "just prose", "", "Untitled deck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			art, err := render.New(render.Options{Title: tt.option}).
				Render(deck.Parse([]byte(tt.source)), []byte(testTemplate))
			require.NoError(t, err)
			assert.Equal(t, tt.want, art.Title)
			assert.Contains(t, string(art.HTML), "<title>"+tt.want+"</title>")
		})
	}
}

func TestRenderContinuationSlides(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("# One\nfirst\n--\nstill one"))
	art, err := render.New(render.Options{}).Render(d, []byte(testTemplate))
	require.NoError(t, err)

	assert.Contains(t, string(art.HTML), `data-ordinal="2" data-continues>`)
}

func TestRenderTemplateFailures(t *testing.T) {
	t.Parallel()

	d := deck.Parse([]byte("# S\nx"))
	r := render.New(render.Options{})

	tests := []struct {
		name     string
		template string
		sentinel error
	}{
		{"missing insertion point", "<html><body>no slides here</body></html>", render.ErrTemplateInvalid},
		{"broken template syntax", "{{.Slides}}{{end}}", render.ErrTemplateInvalid},
		{"unknown field at execution", "{{.Slides}}{{.Nope}}", render.ErrRenderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			art, err := r.Render(d, []byte(tt.template))
			require.ErrorIs(t, err, tt.sentinel)
			assert.Nil(t, art)
		})
	}
}

func TestRenderInlinesLocalImages(t *testing.T) {
	t.Parallel()

	loader := func(path string) ([]byte, error) {
		if path == "img/arch.png" {
			return []byte{0x89, 'P', 'N', 'G'}, nil
		}
		return nil, fmt.Errorf("no such file: %s", path)
	}

	r := render.New(render.Options{Assets: loader})

	t.Run("local image becomes a data uri", func(t *testing.T) {
		t.Parallel()
		d := deck.Parse([]byte("![architecture](img/arch.png)"))
		art, err := r.Render(d, []byte(testTemplate))
		require.NoError(t, err)
		assert.Contains(t, string(art.HTML), `src="data:image/png;base64,`)
		assert.NotContains(t, string(art.HTML), `src="img/arch.png"`)
		assert.Empty(t, art.Warnings)
	})

	t.Run("missing image stays referenced with a warning", func(t *testing.T) {
		t.Parallel()
		d := deck.Parse([]byte("![gone](img/gone.png)"))
		art, err := r.Render(d, []byte(testTemplate))
		require.NoError(t, err)
		assert.Contains(t, string(art.HTML), `src="img/gone.png"`)
		require.Len(t, art.Warnings, 1)
		assert.Contains(t, art.Warnings[0], "could not be read")
	})

	t.Run("remote image is reported as not self-contained", func(t *testing.T) {
		t.Parallel()
		d := deck.Parse([]byte("![remote](https://example.com/a.png)"))
		art, err := r.Render(d, []byte(testTemplate))
		require.NoError(t, err)
		assert.Contains(t, string(art.HTML), `src="https://example.com/a.png"`)
		require.Len(t, art.Warnings, 1)
		assert.Contains(t, art.Warnings[0], "self-contained")
	})
}

func TestRenderStaysSelfContained(t *testing.T) {
	t.Parallel()

	source := []byte("# Self\n\ntext with `code`\n\n```go\nfmt.Println(1)\n```\n\n---\n\n```\n|ascii|\n```")
	art, err := render.New(render.Options{}).Render(deck.Parse(source), []byte(testTemplate))
	require.NoError(t, err)

	html := string(art.HTML)
	assert.NotContains(t, html, `src="http`)
	assert.NotContains(t, html, `href="http`)
	assert.NotContains(t, html, "<link ")
	assert.NotContains(t, html, `<script src=`)
}

func TestRenderSlidesSnapshot(t *testing.T) {
	source := []byte("# Snapshot\n\nStable *prose*.\n\n---\n\n```\n<+>\n```\n\n::: notes\nhold for laughter\n:::")
	art, err := render.New(render.Options{}).Render(deck.Parse(source), []byte(testTemplate))
	require.NoError(t, err)

	mainPattern := regexp.MustCompile(`(?s)<main class="deck">.*</main>`)
	section := mainPattern.FindString(string(art.HTML))
	require.NotEmpty(t, section)

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, section)
}
