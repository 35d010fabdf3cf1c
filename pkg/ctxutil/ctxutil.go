// Package ctxutil carries request-scoped values: the authenticated caller
// and the request id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	identityKey  struct{}
	requestIDKey struct{}
)

type identity struct {
	userID    uuid.UUID
	companyID uuid.UUID
	role      string
}

// WithIdentity records the authenticated user, their company and role.
func WithIdentity(ctx context.Context, userID, companyID uuid.UUID, role string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity{userID: userID, companyID: companyID, role: role})
}

// IdentityFromCtx returns the caller stored by WithIdentity. ok is false for
// anonymous requests and for identities with a nil user or company id.
func IdentityFromCtx(ctx context.Context) (userID, companyID uuid.UUID, ok bool) {
	id, found := ctx.Value(identityKey{}).(identity)
	if !found || id.userID == uuid.Nil || id.companyID == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}
	return id.userID, id.companyID, true
}

// RoleFromCtx returns the caller's role claim, or "" when anonymous.
func RoleFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(identityKey{}).(identity)
	return id.role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
