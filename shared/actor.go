package shared

import (
	"context"
	"resort/shared/constant"
)

// UserID returns the authenticated caller, or an empty string for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return id
}

// Actor is the name written to audit columns. Anonymous callers are recorded as guest.
func Actor(ctx context.Context) string {
	if id := UserID(ctx); id != constant.Empty {
		return id
	}

	return constant.ContextGuest
}
