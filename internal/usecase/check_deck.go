package usecase

import (
	"context"
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/deck"
)

type CheckInput struct {
	Source string
}

type CheckOutput struct {
	Success   bool
	Error     error
	Slides    int
	Fragments int
	Notes     int
	Warnings  []deck.Warning
}

type CheckService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewCheckService(fs FileSystem, cli CLIOutput) *CheckService {
	return &CheckService{
		fs:  fs,
		cli: cli,
	}
}

// CheckDeck parses the source and reports what the build would see,
// without writing anything. Parse warnings do not fail the check; only
// a missing or unreadable source does.
func (s *CheckService) CheckDeck(ctx context.Context, input CheckInput) CheckOutput {
	s.cli.PrintHeader("Lantern Check")

	source, err := vfs.ReadFile(s.fs, input.Source)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return CheckOutput{Error: fmt.Errorf("%w: %s", ErrSourceNotFound, input.Source)}
		}
		return CheckOutput{Error: fmt.Errorf("failed to read deck source: %w", err)}
	}

	d := deck.Parse(source)

	out := CheckOutput{
		Success:   true,
		Slides:    len(d.Slides),
		Fragments: d.FragmentCount(),
		Notes:     d.NoteCount(),
		Warnings:  d.Warnings,
	}

	s.cli.PrintSuccess("%d slides, %d fragments, %d speaker notes", out.Slides, out.Fragments, out.Notes)
	for _, w := range d.Warnings {
		s.cli.PrintWarning("%s:%d %s", input.Source, w.Line, w.Message)
	}
	if len(d.Warnings) == 0 {
		s.cli.PrintDone("No problems found")
	} else {
		s.cli.PrintDone(fmt.Sprintf("%d warnings", len(d.Warnings)))
	}

	return out
}
