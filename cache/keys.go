package cache

import (
	"context"
	"time"
)

const (
	UsersListKey    = "users:all"
	ThoughtsListKey = "thoughts:all"
)

const (
	UsersListTTL    = 1 * time.Minute
	ThoughtsListTTL = 1 * time.Minute
)

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil {
		client.Del(ctx, keys...)
	}
}

// InvalidateUsers drops the cached user list after any user or friend write.
func InvalidateUsers(ctx context.Context) {
	Invalidate(ctx, UsersListKey)
}

// InvalidateThoughts drops the cached thought list after any thought or
// reaction write.
func InvalidateThoughts(ctx context.Context) {
	Invalidate(ctx, ThoughtsListKey)
}
