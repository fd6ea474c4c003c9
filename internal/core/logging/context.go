// Package logging carries per-session identifiers through context.Context
// and copies them onto zerolog events.
package logging

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	scriptKey    contextKey = "script"
)

// WithSessionID adds a session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithScript adds the source of a replayed script to the context.
func WithScript(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, scriptKey, source)
}

// GetSessionID retrieves the session ID from the context.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetScript retrieves the script source from the context.
func GetScript(ctx context.Context) string {
	if src, ok := ctx.Value(scriptKey).(string); ok {
		return src
	}
	return ""
}
