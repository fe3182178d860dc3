package main

import (
	"context"
	"errors"

	"github.com/lanternhq/lantern/internal/usecase"
)

// The Build command compiles the deck source plus the page template into
// one self-contained HTML artifact.
type BuildCmd struct {
	Source   string `kong:"short='s',placeholder='FILE',help='Deck source file.'"`
	Template string `kong:"short='t',placeholder='FILE',help='Page template file.'"`
	Output   string `kong:"short='o',placeholder='FILE',help='Artifact path to write.'"`
	Title    string `kong:"help='Presentation title, overrides the deck heading.'"`
	Style    string `kong:"help='Syntax highlighting style for code fragments.'"`
}

// Run the build command.
func (c *BuildCmd) Run(env *appEnv) error {
	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	source := firstNonEmpty(c.Source, cfg.Source)
	renderer := newRenderer(env,
		firstNonEmpty(c.Title, cfg.Title),
		firstNonEmpty(c.Style, cfg.Style),
		source,
	)

	service := usecase.NewBuildService(renderer, env.FS, env.Out)
	result := service.BuildDeck(context.Background(), usecase.BuildInput{
		Source:   source,
		Template: firstNonEmpty(c.Template, cfg.Template),
		Output:   firstNonEmpty(c.Output, cfg.Output),
	})
	if result.Error != nil {
		return result.Error
	}
	if !result.Success {
		return errors.New("build finished with errors")
	}

	return nil
}
