// Package lantern compiles Markdown slide decks into a single
// self-contained HTML presentation. The command line lives in
// cmd/lantern; this package is the embedding surface for programs that
// want to build decks themselves.
package lantern

import (
	"github.com/lanternhq/lantern/internal/deck"
	"github.com/lanternhq/lantern/internal/render"
)

// Core types, re-exported so embedders never import internal packages.
type (
	Artifact = render.Artifact
	Deck     = deck.Deck
	Slide    = deck.Slide
	Fragment = deck.Fragment
	Warning  = deck.Warning
)

// AssetLoader resolves an asset reference from the deck to its bytes.
// Compile inlines every loaded asset into the artifact.
type AssetLoader = render.AssetLoader

var (
	ErrTemplateInvalid = render.ErrTemplateInvalid
	ErrRenderFailed    = render.ErrRenderFailed
)

// DefaultStyle is the syntax highlighting style used when no option or
// project file picks another one.
const DefaultStyle = render.DefaultStyle

type Option func(*render.Options)

// WithTitle overrides the presentation title. Without it the first
// slide heading wins.
func WithTitle(title string) Option {
	return func(o *render.Options) {
		o.Title = title
	}
}

// WithStyle selects the syntax highlighting style for code fragments.
func WithStyle(style string) Option {
	return func(o *render.Options) {
		o.Style = style
	}
}

// WithAssets installs the loader used to inline images referenced by
// the deck. Without it image references stay as plain tags.
func WithAssets(loader AssetLoader) Option {
	return func(o *render.Options) {
		o.Assets = loader
	}
}

// Parse splits deck source into slides without rendering anything.
func Parse(source []byte) *Deck {
	return deck.Parse(source)
}

// Compile renders deck source against an HTML page template and returns
// the finished artifact. The same inputs always produce the same bytes.
func Compile(source, template []byte, opts ...Option) (*Artifact, error) {
	var options render.Options
	for _, opt := range opts {
		opt(&options)
	}

	return render.New(options).Render(deck.Parse(source), template)
}
