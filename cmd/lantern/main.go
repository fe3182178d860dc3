package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/lanternhq/lantern/internal/adapters/cli"
)

// version is stamped at release time via -ldflags.
var version = "dev"

func main() {
	output := cli.NewOutput()

	c, err := newCLI("lantern " + version)
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
	if err = c.Parse(os.Args[1:]); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	if c.NoColor {
		output.DisableColors()
	}

	logger := slog.New(
		tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      c.Log.Level,
			NoColor:    c.NoColor || !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: "2006-01-02 15:04:05.000",
		}),
	)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(c.Log.Level)

	env := &appEnv{
		FS:     osfs.New(),
		Out:    output,
		Logger: logger,
		Stdout: colorable.NewColorable(os.Stdout),
		Config: c.Config,
	}

	if err = c.Execute(env); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
