package main

import (
	"context"

	"github.com/lanternhq/lantern/internal/usecase"
)

// The Clean command removes the build artifact. Deck sources are never
// touched.
type CleanCmd struct {
	Output string `kong:"short='o',placeholder='FILE',help='Artifact path to remove.'"`
}

// Run the clean command.
func (c *CleanCmd) Run(env *appEnv) error {
	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	service := usecase.NewCleanService(env.FS, env.Out)
	result := service.CleanArtifact(context.Background(), usecase.CleanInput{
		Output: firstNonEmpty(c.Output, cfg.Output),
	})

	return result.Error
}
