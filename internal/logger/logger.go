package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const gameIDKey ctxKey = "gameID"

// GenerateGameID creates a new UUID for tracing a play session.
func GenerateGameID() string {
	return uuid.NewString()
}

// WithGameID returns a new context containing the game ID.
func WithGameID(ctx context.Context, gameID string) context.Context {
	return context.WithValue(ctx, gameIDKey, gameID)
}

// GameIDFromContext extracts the game ID from the context, if present.
func GameIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(gameIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the game_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := GameIDFromContext(ctx); ok {
		return slog.Default().With("game_id", id)
	}
	return slog.Default()
}

// Setup installs the default slog logger on the given writer.
func Setup(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
