package context

import (
	"context"

	"github.com/storescout/storescout/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

func WithUser(ctx context.Context, userID uint64, role string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.UserRoleKey, role)
}
