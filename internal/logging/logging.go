package logging

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Setup opens the operator log file and installs it as the default slog
// destination. The TUI owns the terminal, so diagnostics never go to
// stdout or stderr while the app is running. The caller closes the file.
func Setup(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	})))

	return f, nil
}
