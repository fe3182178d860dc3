package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator grammar: a line of three or more dashes starts a fresh slide,
// a line of exactly two dashes starts a continuation slide. Dash runs
// inside fenced blocks are literal.
var (
	hardSeparator = regexp.MustCompile(`^-{3,}$`)
	softSeparator = regexp.MustCompile(`^--$`)
	fenceOpen     = regexp.MustCompile("^`{3,}(.*)$")
	fenceClose    = regexp.MustCompile("^`{3,}$")
	containerOpen = regexp.MustCompile(`^:::\s*(\S+)$`)
	containerEnd  = regexp.MustCompile(`^:::$`)
)

// Parse splits the deck source into slides. It never fails: malformed
// markup is passed through or skipped, and each degradation is recorded
// as a Warning with the source line that triggered it.
func Parse(source []byte) *Deck {
	p := &parser{}
	p.open(false)

	text := strings.ReplaceAll(string(source), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		p.line(i+1, raw)
	}
	p.finish()

	return &p.deck
}

type parser struct {
	deck  Deck
	slide Slide

	prose   []string
	proseAt int

	inFence   bool
	fenceAt   int
	fenceLang string
	fenceBody []string

	inNotes bool
	notesAt int
}

func (p *parser) line(n int, raw string) {
	trimmed := strings.TrimSpace(raw)

	if p.inFence {
		if fenceClose.MatchString(trimmed) {
			p.flushFence()
			return
		}
		p.fenceBody = append(p.fenceBody, raw)
		return
	}

	// Slide boundaries win over everything outside a fence, including an
	// open notes container.
	switch {
	case hardSeparator.MatchString(trimmed):
		p.close(false)
		return
	case softSeparator.MatchString(trimmed):
		p.close(true)
		return
	}

	if p.inNotes {
		if containerEnd.MatchString(trimmed) {
			p.inNotes = false
			return
		}
		if trimmed != "" {
			p.slide.Notes = append(p.slide.Notes, trimmed)
		}
		return
	}

	if m := containerOpen.FindStringSubmatch(trimmed); m != nil {
		if m[1] == "notes" {
			p.flushProse()
			p.inNotes = true
			p.notesAt = n
			return
		}
		p.warn(n, "unknown container role %q, keeping lines as prose", m[1])
		p.proseLine(n, raw)
		return
	}

	if containerEnd.MatchString(trimmed) {
		p.warn(n, "container terminator without an open container, skipping")
		return
	}

	if m := fenceOpen.FindStringSubmatch(trimmed); m != nil {
		p.flushProse()
		p.inFence = true
		p.fenceAt = n
		p.fenceLang = strings.TrimSpace(m[1])
		p.fenceBody = nil
		return
	}

	if p.slide.Heading == "" && len(p.slide.Fragments) == 0 && len(p.prose) == 0 {
		if level, text, ok := headingLine(trimmed); ok {
			p.slide.Heading = text
			p.slide.HeadingLevel = level
			return
		}
	}

	p.proseLine(n, raw)
}

func (p *parser) proseLine(n int, raw string) {
	if strings.TrimSpace(raw) == "" && len(p.prose) == 0 {
		return
	}
	if len(p.prose) == 0 {
		p.proseAt = n
	}
	p.prose = append(p.prose, raw)
}

// headingLine recognizes a deck heading: a level 1 or 2 ATX heading at
// the top of a slide. Deeper headings stay in the body.
func headingLine(line string) (int, string, bool) {
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return 2, strings.TrimSpace(rest), true
	}
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return 1, strings.TrimSpace(rest), true
	}
	return 0, "", false
}

func (p *parser) flushProse() {
	if len(p.prose) == 0 {
		return
	}
	text := strings.TrimRight(strings.Join(p.prose, "\n"), "\n")
	if strings.TrimSpace(text) != "" {
		p.slide.Fragments = append(p.slide.Fragments, Fragment{
			Kind: FragmentProse,
			Text: text,
			Line: p.proseAt,
		})
	}
	p.prose = nil
}

func (p *parser) flushFence() {
	kind := FragmentCode
	if p.fenceLang == "" || p.fenceLang == "text" {
		kind = FragmentFigure
	}
	p.slide.Fragments = append(p.slide.Fragments, Fragment{
		Kind: kind,
		Text: strings.Join(p.fenceBody, "\n"),
		Lang: p.fenceLang,
		Line: p.fenceAt,
	})
	p.inFence = false
	p.fenceLang = ""
	p.fenceBody = nil
}

// close ends the current slide at a separator and opens the next one.
// Unclosed fences and note containers run to the slide end.
func (p *parser) close(soft bool) {
	p.settle()
	p.push()
	p.open(soft)
}

func (p *parser) finish() {
	p.settle()
	p.push()
}

func (p *parser) settle() {
	if p.inFence {
		p.warn(p.fenceAt, "fence is never closed, block runs to the end of the slide")
		p.flushFence()
	}
	if p.inNotes {
		p.warn(p.notesAt, "notes container is never closed, notes run to the end of the slide")
		p.inNotes = false
	}
	p.flushProse()
}

func (p *parser) push() {
	p.slide.Ordinal = len(p.deck.Slides) + 1
	p.deck.Slides = append(p.deck.Slides, p.slide)
}

func (p *parser) open(continuation bool) {
	p.slide = Slide{Continuation: continuation}
}

func (p *parser) warn(line int, format string, args ...any) {
	p.deck.Warnings = append(p.deck.Warnings, Warning{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}
