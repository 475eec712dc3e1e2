package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	LikeCountKeyPrefix = "post:%d:likes"
)

const (
	UserTTL      = 5 * time.Minute
	LikeCountTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func LikeCountKey(postID uint) string {
	return fmt.Sprintf(LikeCountKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateLikeCount(ctx context.Context, postID uint) {
	Invalidate(ctx, LikeCountKey(postID))
}
