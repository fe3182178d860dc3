// Package deck holds the slide deck model and the notation parser.
package deck

import "strings"

type FragmentKind int

const (
	FragmentProse FragmentKind = iota
	FragmentCode
	FragmentFigure
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentProse:
		return "prose"
	case FragmentCode:
		return "code"
	case FragmentFigure:
		return "figure"
	}
	return "unknown"
}

// Fragment is one body block of a slide. Text is the raw source text:
// Markdown for prose, program text for code, literal text for figures.
type Fragment struct {
	Kind FragmentKind
	Text string
	Lang string
	Line int
}

// Slide is one separator-delimited segment of the deck source.
type Slide struct {
	Ordinal      int
	Heading      string
	HeadingLevel int
	Fragments    []Fragment
	Notes        []string
	Continuation bool
}

// Empty reports whether the slide carries no content at all. Empty slides
// are degenerate but legal; they come from leading or doubled separators.
func (s *Slide) Empty() bool {
	return s.Heading == "" && len(s.Fragments) == 0 && len(s.Notes) == 0
}

// Warning records a spot where the parser degraded malformed markup
// instead of failing the build.
type Warning struct {
	Line    int
	Message string
}

type Deck struct {
	Slides   []Slide
	Warnings []Warning
}

// Title returns the first non-empty slide heading, or "".
func (d *Deck) Title() string {
	for i := range d.Slides {
		if h := strings.TrimSpace(d.Slides[i].Heading); h != "" {
			return h
		}
	}
	return ""
}

func (d *Deck) FragmentCount() int {
	n := 0
	for i := range d.Slides {
		n += len(d.Slides[i].Fragments)
	}
	return n
}

func (d *Deck) NoteCount() int {
	n := 0
	for i := range d.Slides {
		n += len(d.Slides[i].Notes)
	}
	return n
}
