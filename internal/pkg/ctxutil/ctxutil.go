package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

type updateScopeKey struct{}

// WithUpdateScope marks a request as carrying a verified update capability.
func WithUpdateScope(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, updateScopeKey{}, subject)
}

// UpdateSubject returns the token subject for a verified update request,
// or "" when the request carries no update capability.
func UpdateSubject(ctx context.Context) string {
	if s, ok := ctx.Value(updateScopeKey{}).(string); ok {
		return s
	}
	return ""
}
