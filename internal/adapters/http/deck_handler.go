package http

import (
	"bytes"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/usecase"
)

// DeckHandler serves the rendered presentation to a browser. Every hit
// on / goes through the preview service, so a refresh after an edit
// shows the new deck without restarting anything.
type DeckHandler struct {
	service *usecase.PreviewService
	input   usecase.PreviewInput
	logger  *slog.Logger
}

func NewDeckHandler(service *usecase.PreviewService, input usecase.PreviewInput, logger *slog.Logger) http.Handler {
	return &DeckHandler{
		service: service,
		input:   input,
		logger:  logger,
	}
}

func (h *DeckHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch core.NormalizePath(req.URL.Path) {
	case "/", "/index.html":
		h.serveDeck(w, req)
	case "/healthz":
		h.serveHealth(w)
	default:
		http.NotFound(w, req)
	}
}

func (h *DeckHandler) serveDeck(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	output := h.service.RenderDeck(req.Context(), h.input)
	if output.Error != nil {
		h.logger.Error("deck render failed", "error", output.Error)
		h.serveError(w, output.Error)
		return
	}

	if !output.Cached {
		for _, warning := range output.Warnings {
			h.logger.Warn("deck warning", "warning", warning)
		}
	}
	h.logger.Info("deck served",
		"slides", output.Slides,
		"cached", output.Cached,
		"took", time.Since(start),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output.HTML)
}

func (h *DeckHandler) serveHealth(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *DeckHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
