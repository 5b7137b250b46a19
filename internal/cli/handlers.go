package cli

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/blimu-dev/tsclient-gen/pkg/config"
)

// NewLogger returns the text logger used by the command line.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// utility
func absPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}

func specLocation(spec string) string {
	if config.IsRemote(spec) {
		return spec
	}
	return absPath(spec)
}
