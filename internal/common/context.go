package common

import (
	"context"

	"github.com/google/uuid"
)

// Role is the coarse authorization role attached to a principal. Authentication
// itself happens upstream; this package only carries the resolved facts.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Principal is the current authenticated actor, scoped to one school. It is
// threaded explicitly through every operation instead of read from ambient
// session state.
type Principal struct {
	UserID   uuid.UUID
	Role     Role
	SchoolID uuid.UUID
}

// CanManage reports whether the principal is staff (admin or teacher) for
// the given school. Uploads, overrides, and identification corrections all
// require it.
func (p Principal) CanManage(schoolID uuid.UUID) bool {
	if p.Role != RoleAdmin && p.Role != RoleTeacher {
		return false
	}
	return p.SchoolID == schoolID
}

// Context keys for storing values in context
type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeyPrincipal contextKey = "principal"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithPrincipal adds the current principal to the context
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal, p)
}

// PrincipalFromContext extracts the principal from context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKeyPrincipal).(Principal)
	return p, ok
}
