package cli

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/diagmc/magcheck/internal/render"
)

// setupLogging configures the process logger. Debug level behind --verbose.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// newRunToken returns a fresh token correlating the log lines of one
// pipeline invocation. UUIDv7 tokens sort by creation time.
func newRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}

// styleFor resolves the plot style: defaults, or the --style file when given.
func styleFor(opts *RootOptions) (render.Style, error) {
	if opts.StyleFile == "" {
		return render.DefaultStyle(), nil
	}
	return render.LoadStyle(opts.StyleFile)
}
