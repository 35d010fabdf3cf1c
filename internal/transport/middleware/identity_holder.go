package middleware

import "context"

// identityHolder lets Logger see the identity Auth resolves further down the
// chain, since Auth's context never flows back up.
type identityHolder struct {
	set       bool
	userID    string
	companyID string
}

type holderKey struct{}

func withIdentityHolder(ctx context.Context, h *identityHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func identityHolderFromCtx(ctx context.Context) *identityHolder {
	h, _ := ctx.Value(holderKey{}).(*identityHolder)
	return h
}
