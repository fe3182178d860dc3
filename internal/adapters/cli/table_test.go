package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lanternhq/lantern/internal/deck"
)

func TestRenderOutline(t *testing.T) {
	d := &deck.Deck{
		Slides: []deck.Slide{
			{Ordinal: 1, Heading: "Intro", Fragments: []deck.Fragment{{Kind: deck.FragmentProse}}},
			{Ordinal: 2, Continuation: true, Fragments: []deck.Fragment{{Kind: deck.FragmentCode}}},
			{Ordinal: 3},
			{Ordinal: 4, Heading: "Wrap up", Notes: []string{"thank the host"}},
		},
	}

	var buf bytes.Buffer
	if err := RenderOutline(&buf, d); err != nil {
		t.Fatalf("RenderOutline() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Heading", "Intro", "Wrap up", "(blank)", "cont.", "slide"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q in output:\n%s", want, out)
		}
	}

	introLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Intro") {
			introLine = line
			break
		}
	}
	if !strings.Contains(introLine, "1") {
		t.Errorf("Intro row should carry ordinal 1, got %q", introLine)
	}
}

func TestRenderOutlineEmptyDeck(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderOutline(&buf, &deck.Deck{}); err != nil {
		t.Fatalf("RenderOutline() error = %v", err)
	}
}
