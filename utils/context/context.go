package context

import (
	"context"

	"github.com/oleksandr-romashko/contacts-api/constant"
)

// WithUserID stamps the authenticated owner onto the request context.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetUserID extracts the authenticated owner from the context. Every
// contact operation is scoped by this value.
func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
