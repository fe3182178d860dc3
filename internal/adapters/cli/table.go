package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lanternhq/lantern/internal/deck"
)

// RenderOutline prints one row per slide: ordinal, kind, heading,
// fragment count, note count. Continuation slides show as "cont." so
// the logical grouping is visible at a glance.
func RenderOutline(w io.Writer, d *deck.Deck) error {
	header := []string{"#", "Kind", "Heading", "Fragments", "Notes"}

	data := make([][]string, 0, len(d.Slides))
	for i := range d.Slides {
		s := &d.Slides[i]
		kind := "slide"
		if s.Continuation {
			kind = "cont."
		}
		heading := s.Heading
		if s.Empty() {
			heading = "(blank)"
		}
		data = append(data, []string{
			strconv.Itoa(s.Ordinal),
			kind,
			heading,
			strconv.Itoa(len(s.Fragments)),
			strconv.Itoa(len(s.Notes)),
		})
	}

	return renderTable(header, data, w)
}

func renderTable(header []string, data [][]string, w io.Writer) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(
			tw.Rendition{
				Borders: tw.BorderNone,
				Symbols: tw.NewSymbols(tw.StyleASCII),
				Settings: tw.Settings{
					Lines: tw.Lines{
						ShowHeaderLine: tw.Off,
						ShowFooterLine: tw.Off,
						ShowTop:        tw.Off,
						ShowBottom:     tw.Off,
					},
					Separators: tw.Separators{
						ShowHeader:     tw.Off,
						ShowFooter:     tw.Off,
						BetweenRows:    tw.Off,
						BetweenColumns: tw.Off,
					},
				},
			},
		)),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Formatting:   tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:    tw.CellAlignment{Global: tw.AlignLeft},
				ColMaxWidths: tw.CellWidth{Global: 60},
			},
		}),
	)

	table.Header(header)
	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}
