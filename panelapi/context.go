package panelapi

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a request identifier to ctx. The client stamps it
// on the outgoing X-Request-ID header instead of generating one, letting a
// dashboard propagate a single ID through its own logs and the panel's.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
