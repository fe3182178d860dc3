package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/deck"
)

type PreviewInput struct {
	Source   string
	Template string
}

type PreviewOutput struct {
	HTML     []byte
	Title    string
	Slides   int
	Warnings []string
	Cached   bool
	Error    error
}

type cachedRender struct {
	HTML     []byte
	Title    string
	Slides   int
	Warnings []string
}

// renderCache remembers the last render keyed by a digest of both input
// files. The preview only ever needs the latest artifact, so a single
// entry under an RWMutex is the whole cache.
type renderCache struct {
	mu    sync.RWMutex
	key   string
	entry cachedRender
	ok    bool
}

func (c *renderCache) get(key string) (cachedRender, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ok || c.key != key {
		return cachedRender{}, false
	}
	return c.entry, true
}

func (c *renderCache) set(key string, entry cachedRender) {
	c.mu.Lock()
	c.key = key
	c.entry = entry
	c.ok = true
	c.mu.Unlock()
}

type PreviewService struct {
	renderer Renderer
	fs       FileSystem
	cache    renderCache
}

func NewPreviewService(renderer Renderer, fs FileSystem) *PreviewService {
	return &PreviewService{
		renderer: renderer,
		fs:       fs,
	}
}

// RenderDeck re-reads both inputs on every call so a browser refresh
// sees the latest edit. When the digest matches the cached render the
// parse and render are skipped. Renderer options are fixed for the
// lifetime of the process, so the digest only has to cover the files.
func (s *PreviewService) RenderDeck(ctx context.Context, input PreviewInput) PreviewOutput {
	source, err := vfs.ReadFile(s.fs, input.Source)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return PreviewOutput{Error: fmt.Errorf("%w: %s", ErrSourceNotFound, input.Source)}
		}
		return PreviewOutput{Error: fmt.Errorf("failed to read deck source: %w", err)}
	}

	templateSrc, err := vfs.ReadFile(s.fs, input.Template)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return PreviewOutput{Error: fmt.Errorf("%w: %s", ErrTemplateNotFound, input.Template)}
		}
		return PreviewOutput{Error: fmt.Errorf("failed to read page template: %w", err)}
	}

	key := core.HashContent(source, templateSrc)
	if entry, ok := s.cache.get(key); ok {
		return PreviewOutput{
			HTML:     entry.HTML,
			Title:    entry.Title,
			Slides:   entry.Slides,
			Warnings: entry.Warnings,
			Cached:   true,
		}
	}

	d := deck.Parse(source)
	artifact, err := s.renderer.Render(d, templateSrc)
	if err != nil {
		return PreviewOutput{Error: err}
	}

	warnings := make([]string, 0, len(d.Warnings)+len(artifact.Warnings))
	for _, w := range d.Warnings {
		warnings = append(warnings, fmt.Sprintf("%s:%d %s", input.Source, w.Line, w.Message))
	}
	warnings = append(warnings, artifact.Warnings...)

	entry := cachedRender{
		HTML:     artifact.HTML,
		Title:    artifact.Title,
		Slides:   artifact.Slides,
		Warnings: warnings,
	}
	s.cache.set(key, entry)

	return PreviewOutput{
		HTML:     entry.HTML,
		Title:    entry.Title,
		Slides:   entry.Slides,
		Warnings: entry.Warnings,
	}
}
