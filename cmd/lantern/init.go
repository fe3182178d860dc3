package main

import (
	"context"

	"github.com/lanternhq/lantern/internal/usecase"
)

// The Init command creates a new deck project from a scaffold.
type InitCmd struct {
	Dir      string `kong:"arg,help='Directory to create the project in.'"`
	Scaffold string `kong:"default='minimal',help='Scaffold to start from (minimal, talk).'"`
}

// Run the init command.
func (c *InitCmd) Run(env *appEnv) error {
	service := usecase.NewInitService(env.FS, env.Out)
	result := service.InitProject(context.Background(), usecase.InitInput{
		ProjectDir: c.Dir,
		Scaffold:   c.Scaffold,
	})
	if result.Error != nil {
		return result.Error
	}

	env.Out.PrintStep("Next: cd %s && lantern build", c.Dir)

	return nil
}
