// Package render turns a parsed deck plus an HTML template into one
// self-contained artifact. Everything the presentation needs (styles,
// navigation script, highlighted code, inlined images) ends up inside
// the single output document.
package render

import (
	"bytes"
	"errors"
	"fmt"
	stdhtml "html"
	"html/template"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/lanternhq/lantern/internal/assets"
	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/deck"
)

const DefaultStyle = "github-dark"

var (
	ErrTemplateInvalid = errors.New("template is not valid")
	ErrRenderFailed    = errors.New("deck render failed")
)

// AssetLoader resolves a project-relative asset path to its bytes. It is
// how the image inliner reads files without the renderer knowing about
// any particular filesystem.
type AssetLoader func(path string) ([]byte, error)

// Options tune a Renderer. The zero value is usable: deck title, default
// highlight style, no asset inlining.
type Options struct {
	Title  string
	Style  string
	Assets AssetLoader
}

type Renderer struct {
	md        goldmark.Markdown
	style     *chroma.Style
	formatter *chromahtml.Formatter
	assets    AssetLoader
	title     string
}

func New(opts Options) *Renderer {
	styleName := opts.Style
	if styleName == "" {
		styleName = DefaultStyle
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(4)),
		assets:    opts.Assets,
		title:     opts.Title,
	}
}

// Artifact is the rendered presentation.
type Artifact struct {
	HTML     []byte
	Title    string
	Slides   int
	Warnings []string
}

// pageData is the template contract. {{.Slides}} is required; the rest
// are optional insertion points a template may use.
type pageData struct {
	Title  string
	Styles template.CSS
	Slides template.HTML
	Script template.JS
}

var slidesInsertion = regexp.MustCompile(`\{\{-?\s*\.Slides\s*-?\}\}`)

// Render produces the full artifact in memory. A broken template is the
// only fatal condition; fragment-level trouble degrades with warnings.
func (r *Renderer) Render(d *deck.Deck, templateSrc []byte) (*Artifact, error) {
	tmpl, err := parseTemplate(templateSrc)
	if err != nil {
		return nil, err
	}

	var warnings []string
	var slides strings.Builder
	for i := range d.Slides {
		r.renderSlide(&slides, &d.Slides[i], &warnings)
	}

	title := r.title
	if title == "" {
		title = d.Title()
	}
	if title == "" {
		title = "Untitled deck"
	}

	css, err := r.styleSheet()
	if err != nil {
		return nil, fmt.Errorf("%w: building style sheet: %v", ErrRenderFailed, err)
	}

	var out bytes.Buffer
	data := pageData{
		Title:  title,
		Styles: template.CSS(css),
		Slides: template.HTML(slides.String()),
		Script: template.JS(assets.NavScript),
	}
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return &Artifact{
		HTML:     out.Bytes(),
		Title:    title,
		Slides:   len(d.Slides),
		Warnings: warnings,
	}, nil
}

func parseTemplate(src []byte) (*template.Template, error) {
	if !slidesInsertion.Match(src) {
		return nil, fmt.Errorf("%w: missing the {{.Slides}} insertion point", ErrTemplateInvalid)
	}

	tmpl, err := template.New("deck").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	return tmpl, nil
}

func (r *Renderer) renderSlide(w *strings.Builder, s *deck.Slide, warnings *[]string) {
	fmt.Fprintf(w, `<section class="slide" id=%q data-ordinal="%d"`,
		core.AnchorForSlide(s.Ordinal, s.Heading), s.Ordinal)
	if s.HeadingLevel > 0 {
		fmt.Fprintf(w, ` data-heading-level="%d"`, s.HeadingLevel)
	}
	if s.Continuation {
		w.WriteString(" data-continues")
	}
	w.WriteString(">\n")

	if s.Heading != "" {
		fmt.Fprintf(w, "<h2 class=\"slide-heading\">%s</h2>\n", stdhtml.EscapeString(s.Heading))
	}

	w.WriteString("<div class=\"slide-body\">\n")
	for _, f := range s.Fragments {
		frag, warns := r.renderFragment(f)
		*warnings = append(*warnings, warns...)
		w.WriteString(frag)
		if !strings.HasSuffix(frag, "\n") {
			w.WriteByte('\n')
		}
	}
	w.WriteString("</div>\n")

	// Speaker notes ride along hidden. They never join the slide body.
	if len(s.Notes) > 0 {
		w.WriteString("<aside class=\"notes\" hidden>\n")
		for _, n := range s.Notes {
			fmt.Fprintf(w, "<p>%s</p>\n", stdhtml.EscapeString(n))
		}
		w.WriteString("</aside>\n")
	}

	w.WriteString("</section>\n")
}

func (r *Renderer) styleSheet() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(assets.ThemeCSS)
	buf.WriteByte('\n')
	if err := r.formatter.WriteCSS(&buf, r.style); err != nil {
		return "", err
	}
	return buf.String(), nil
}
