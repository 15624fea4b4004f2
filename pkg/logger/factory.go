package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// New creates a JSON logger on stdout at info level.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{Level: slog.LevelInfo, Format: FormatJSON}, extractors...)
}

// NewWithConfig creates a stdout logger honouring cfg.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(NewHandler(os.Stdout, cfg), extractors...))
}

// NewHandler builds the base handler writing to w.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	terminal := isTerminal(w)

	format := cfg.Format
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if terminal {
			format = FormatText
		}
	}

	if format == FormatText {
		if f, ok := w.(*os.File); ok && terminal {
			w = colorable.NewColorable(f)
		}
		return tint.NewHandler(w, &tint.Options{
			Level:      cfg.Level,
			TimeFormat: time.TimeOnly,
			NoColor:    !terminal,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
