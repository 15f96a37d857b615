package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// textLineHandler is a minimal slog.Handler that writes one line per
// record: a timestamp, level, message, and space-separated key=value
// attributes. It exists so verbose solver diagnostics stay readable on a
// terminal without pulling in a JSON log viewer.
type textLineHandler struct {
	h   slog.Handler
	mu  *sync.Mutex
	out io.Writer
}

func newTextLineHandler(w io.Writer, opts *slog.HandlerOptions) *textLineHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &textLineHandler{
		out: w,
		h:   slog.NewTextHandler(w, opts),
		mu:  &sync.Mutex{},
	}
}

func (h *textLineHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *textLineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &textLineHandler{h: h.h.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *textLineHandler) WithGroup(name string) slog.Handler {
	return &textLineHandler{h: h.h.WithGroup(name), out: h.out, mu: h.mu}
}

func (h *textLineHandler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("15:04:05.000")
	parts := []string{formattedTime, r.Level.String(), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})

	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(line))
	return err
}

// solverLogAdapter satisfies tsp.Logger by forwarding to an *slog.Logger,
// keeping the solver package itself free of a slog dependency.
type solverLogAdapter struct {
	log *slog.Logger
}

func (a solverLogAdapter) Debug(msg string, args ...any) {
	a.log.Debug(msg, args...)
}
