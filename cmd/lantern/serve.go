package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	lanternhttp "github.com/lanternhq/lantern/internal/adapters/http"
	"github.com/lanternhq/lantern/internal/usecase"
)

// The Serve command renders the deck on every request, so edits show up
// on the next refresh without an explicit build.
type ServeCmd struct {
	Address  string `kong:"short='a',default=':8080',help='[host]:port to listen on.'"`
	Source   string `kong:"short='s',placeholder='FILE',help='Deck source file.'"`
	Template string `kong:"short='t',placeholder='FILE',help='Page template file.'"`
	Title    string `kong:"help='Presentation title, overrides the deck heading.'"`
	Style    string `kong:"help='Syntax highlighting style for code fragments.'"`
}

// Run the serve command.
func (c *ServeCmd) Run(env *appEnv) error {
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

	service := usecase.NewPreviewService(renderer, env.FS)
	input := usecase.PreviewInput{
		Source:   source,
		Template: firstNonEmpty(c.Template, cfg.Template),
	}

	srv := &http.Server{
		Addr:              c.Address,
		Handler:           lanternhttp.NewDeckHandler(service, input, env.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	env.Out.PrintHeader("Lantern Serve")
	env.Out.PrintStep("Previewing %s at %s", source, previewURL(c.Address))
	env.Out.PrintStep("Edit and refresh, Ctrl+C stops the server")

	// Gracefully shut the server down when a process signal arrives.
	srvDone := make(chan error)
	go func() {
		srvErr := srv.ListenAndServe()
		slog.Debug("preview server shutdown")
		srvDone <- srvErr
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sigCh:
		slog.Debug("process received signal", "signal", s)
	case srvErr := <-srvDone:
		if srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			return fmt.Errorf("preview server error: %w", srvErr)
		}

		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed shutting down preview server: %w", err)
	}

	return nil
}

func previewURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}

	return "http://" + addr
}
