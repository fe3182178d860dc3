package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/adapters/cli"
	"github.com/lanternhq/lantern/internal/config"
	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/render"
)

// CLI is the command line interface of Lantern.
type CLI struct {
	Build  BuildCmd  `kong:"cmd,default='withargs',help='Compile the deck into a single self-contained HTML file.'"`
	Clean  CleanCmd  `kong:"cmd,help='Remove the build artifact.'"`
	Check  CheckCmd  `kong:"cmd,help='Parse the deck and report problems without building.'"`
	Init   InitCmd   `kong:"cmd,help='Create a new deck project from a scaffold.'"`
	Slides SlidesCmd `kong:"cmd,help='Print the deck outline.'"`
	Serve  ServeCmd  `kong:"cmd,help='Serve a live preview of the deck over HTTP.'"`

	Log struct {
		Level slog.Level `enum:"DEBUG,INFO,WARN,ERROR" default:"INFO" help:"Set the app logging level."`
	} `embed:"" prefix:"log-"`
	Config  string           `kong:"default='${configFile}',help='Path to the project file.'"`
	NoColor bool             `kong:"help='Disable colored output.'"`
	Version kong.VersionFlag `kong:"help='Output version and exit.'"`

	kong *kong.Kong
	kctx *kong.Context
}

// newCLI initializes the command-line interface.
func newCLI(version string) (*CLI, error) {
	c := &CLI{}
	kparser, err := kong.New(c,
		kong.Name("lantern"),
		kong.Description("Build Markdown slide decks into a single self-contained HTML page."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{
			"configFile": config.DefaultFile,
			"version":    version,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating the Kong parser: %w", err)
	}
	c.kong = kparser

	return c, nil
}

// Parse the given command line arguments. This method must be called before
// Execute.
func (c *CLI) Parse(args []string) error {
	kctx, err := c.kong.Parse(args)
	if err != nil {
		return fmt.Errorf("failed parsing CLI arguments: %w", err)
	}
	c.kctx = kctx

	return nil
}

// Execute runs the selected command.
func (c *CLI) Execute(env *appEnv) error {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}

	return c.kctx.Run(env)
}

// appEnv carries everything the commands need. main assembles the real one
// against the OS; the pieces are swappable so commands stay wiring-only.
type appEnv struct {
	FS     vfs.FileSystem
	Out    *cli.Output
	Logger *slog.Logger
	Stdout io.Writer
	Config string
}

// loadConfig reads the optional project file and fills in the built-in
// layout defaults. Flags beat the file, the file beats the defaults.
func loadConfig(env *appEnv) (*config.Config, error) {
	cfg := config.New(env.FS, env.Config)
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()

	env.Logger.Debug("project configuration resolved",
		"path", cfg.Path(),
		"source", cfg.Source,
		"template", cfg.Template,
		"output", cfg.Output,
	)

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// newRenderer builds the deck renderer. Asset references in the deck
// resolve relative to the source file's directory.
func newRenderer(env *appEnv, title, style, source string) *render.Renderer {
	sourceDir := filepath.Dir(source)

	return render.New(render.Options{
		Title: title,
		Style: style,
		Assets: func(path string) ([]byte, error) {
			return vfs.ReadFile(env.FS, core.ResolveInDir(sourceDir, path))
		},
	})
}
