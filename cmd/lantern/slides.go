package main

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/adapters/cli"
	"github.com/lanternhq/lantern/internal/deck"
	"github.com/lanternhq/lantern/internal/usecase"
)

// The Slides command prints a table outline of the deck: one row per
// slide with its heading, fragment count and note count.
type SlidesCmd struct {
	Source string `kong:"short='s',placeholder='FILE',help='Deck source file.'"`
}

// Run the slides command.
func (c *SlidesCmd) Run(env *appEnv) error {
	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	source := firstNonEmpty(c.Source, cfg.Source)
	data, err := vfs.ReadFile(env.FS, source)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return fmt.Errorf("%w: %s", usecase.ErrSourceNotFound, source)
		}

		return fmt.Errorf("failed reading deck source: %w", err)
	}

	d := deck.Parse(data)
	if err := cli.RenderOutline(env.Stdout, d); err != nil {
		return err
	}
	if len(d.Warnings) > 0 {
		env.Out.PrintWarning("%d parse warnings, run `lantern check` for details", len(d.Warnings))
	}

	return nil
}
