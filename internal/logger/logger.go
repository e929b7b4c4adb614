package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var levelColors = map[string]string{
	"TRACE": "\x1b[36m",   // голубой
	"DEBUG": "\x1b[32m",   // зелёный
	"INFO":  "\x1b[34m",   // синий
	"WARN":  "\x1b[33m",   // жёлтый
	"ERROR": "\x1b[31m",   // красный
	"FATAL": "\x1b[31;1m", // ярко-красный
	"PANIC": "\x1b[35m",   // пурпурный
}

// NewLogger builds the console logger writing to stdout at the given level.
func NewLogger(level string) (*zerolog.Logger, error) {
	return New(os.Stdout, level)
}

func New(out io.Writer, level string) (*zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	log := zerolog.New(consoleWriter(out)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return &log, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	output.FormatLevel = func(i interface{}) string {
		level, _ := i.(string)
		level = strings.ToUpper(level)

		color, ok := levelColors[level]
		if !ok {
			color = "\x1b[0m" // сброс цвета
		}
		return fmt.Sprintf("%s| %-6s|\x1b[0m", color, level)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("\x1b[1m%s\x1b[0m", i)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}

	output.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\x1b[32m%s\x1b[0m", i)
	}

	return output
}
