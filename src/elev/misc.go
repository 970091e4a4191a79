package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cabinctl/src/types"
)

// InitLogger sets up global logging with compact time format and file:line sources.
// If logFile is non-empty, output also goes to that file. The returned closer closes it.
func InitLogger(level string, logFile string) (io.Closer, error) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = io.NopCloser(nil)
	)
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelDebug
}

// FormatStatus renders a one-line summary of the cabin state.
func FormatStatus(s CabinState) string {
	target := "-"
	if s.Target != NoTarget {
		target = fmt.Sprint(s.Target)
	}
	return fmt.Sprintf("floor %d | %s | dir %s | target %s | timer %d | requests %v",
		s.Floor, s.Mode, s.Dir, target, s.Timer.Remaining(), s.Requests.Floors())
}

// FormatAction renders an action together with the floor it applies to.
func FormatAction(action types.Action, s CabinState) string {
	switch action {
	case types.MoveUp, types.MoveDown:
		return fmt.Sprintf("%s(%d->%d)", action, s.Floor, s.Target)
	case types.OpenDoor, types.CloseDoor:
		return fmt.Sprintf("%s(%d)", action, s.Floor)
	}
	return action.String()
}
