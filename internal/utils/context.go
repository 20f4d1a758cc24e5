package utils

import (
	"context"

	"github.com/UserHub/userhub-backend/internal/auth"
)

type contextKey string

const ContextRequesterKey contextKey = "requester"

func WithRequester(ctx context.Context, requester *auth.Requester) context.Context {
	return context.WithValue(ctx, ContextRequesterKey, requester)
}

func GetRequesterFromContext(ctx context.Context) (*auth.Requester, bool) {
	requester, ok := ctx.Value(ContextRequesterKey).(*auth.Requester)
	if !ok || requester == nil {
		return nil, false
	}
	return requester, true
}
