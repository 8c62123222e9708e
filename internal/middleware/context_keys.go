package middleware

import "context"

// requestIDCtxKey is the key used to store the request ID in the request context.
const requestIDCtxKey = contextKey("requestID")

// GetRequestIDFromCtx retrieves the request ID set by StructuredLoggingMiddleware.
// It returns the request ID and a boolean indicating if it was found.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDCtxKey).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}
