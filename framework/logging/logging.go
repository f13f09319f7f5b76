// Package logging builds the application's structured logger from config.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/km-arc/go-beans/framework/config"
)

// New returns a slog.Logger writing to w in the configured format and level.
// Unknown levels fall back to info, unknown formats to text.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps debug|info|warn|error to a slog.Level.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
