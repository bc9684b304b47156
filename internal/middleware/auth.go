package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// OperatorIDKey is the context key for the authenticated operator ID.
	OperatorIDKey contextKey = "operator_id"
	// OperatorNameKey is the context key for the authenticated operator name.
	OperatorNameKey contextKey = "operator_name"
)

// GetOperatorID extracts the operator ID from the context.
// Returns empty string if not found.
func GetOperatorID(ctx context.Context) string {
	id, _ := ctx.Value(OperatorIDKey).(string)
	return id
}

// GetOperatorName extracts the operator name from the context.
// Returns empty string if not found.
func GetOperatorName(ctx context.Context) string {
	name, _ := ctx.Value(OperatorNameKey).(string)
	return name
}

// WithOperator returns a copy of ctx carrying the operator identity.
func WithOperator(ctx context.Context, id, name string) context.Context {
	ctx = context.WithValue(ctx, OperatorIDKey, id)
	return context.WithValue(ctx, OperatorNameKey, name)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// OptionalAuth returns an interceptor that adds the operator identity when a
// valid JWT is present, and otherwise lets the request through unchanged.
// Handlers that mutate state check for the operator themselves.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				if claims, err := jwtManager.Validate(token); err == nil {
					ctx = WithOperator(ctx, claims.OperatorID, claims.Name)
				}
			}
			return next(ctx, req)
		}
	}
}
