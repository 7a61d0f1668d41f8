package logging

import "context"

type contextKey string

const (
	tripFileKey contextKey = "trip_file"
	commandKey  contextKey = "command"
)

// WithTripFile adds the path of the trip file being worked on to the context.
func WithTripFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, tripFileKey, path)
}

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetTripFile retrieves the trip file path from the context.
// Returns empty string if not present.
func GetTripFile(ctx context.Context) string {
	if p, ok := ctx.Value(tripFileKey).(string); ok {
		return p
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
