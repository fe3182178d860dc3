package main

import (
	"context"

	"github.com/lanternhq/lantern/internal/usecase"
)

// The Check command parses the deck and reports problems without writing
// anything.
type CheckCmd struct {
	Source string `kong:"short='s',placeholder='FILE',help='Deck source file.'"`
}

// Run the check command.
func (c *CheckCmd) Run(env *appEnv) error {
	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	service := usecase.NewCheckService(env.FS, env.Out)
	result := service.CheckDeck(context.Background(), usecase.CheckInput{
		Source: firstNonEmpty(c.Source, cfg.Source),
	})

	return result.Error
}
