package render

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/lanternhq/lantern/internal/deck"
)

func (r *Renderer) renderFragment(f deck.Fragment) (string, []string) {
	switch f.Kind {
	case deck.FragmentCode:
		return r.renderCode(f)
	case deck.FragmentFigure:
		return renderFigure(f), nil
	default:
		return r.renderProse(f)
	}
}

func (r *Renderer) renderProse(f deck.Fragment) (string, []string) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(f.Text), &buf); err != nil {
		warn := fmt.Sprintf("prose at line %d could not be rendered, keeping it verbatim: %v", f.Line, err)
		return renderFigure(deck.Fragment{Text: f.Text}), []string{warn}
	}

	html := buf.String()
	if r.assets == nil {
		return html, nil
	}
	return r.inlineImages(html, f.Line)
}

func (r *Renderer) renderCode(f deck.Fragment) (string, []string) {
	var warnings []string

	lexer := lexers.Get(f.Lang)
	if lexer == nil {
		warnings = append(warnings, fmt.Sprintf(
			"no highlighter for language %q at line %d, rendering as plain text", f.Lang, f.Line))
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, f.Text)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("highlighting failed at line %d: %v", f.Line, err))
		return renderFigure(f), warnings
	}

	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, r.style, it); err != nil {
		warnings = append(warnings, fmt.Sprintf("highlighting failed at line %d: %v", f.Line, err))
		return renderFigure(f), warnings
	}
	return buf.String(), warnings
}

// renderFigure keeps preformatted text exactly as authored. ASCII
// diagrams depend on nothing being reflowed or interpreted.
func renderFigure(f deck.Fragment) string {
	return "<pre class=\"figure\">" + stdhtml.EscapeString(f.Text) + "</pre>\n"
}
