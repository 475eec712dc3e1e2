package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)

	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
		mr.Close()
	})
	return mr
}

type cachedUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var dest cachedUser
	found, err := GetJSON(context.Background(), "missing-key", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSetGetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	in := cachedUser{ID: 7, Name: "Ayesha"}
	require.NoError(t, SetJSON(ctx, UserKey(7), in, UserTTL))

	var out cachedUser
	found, err := GetJSON(ctx, UserKey(7), &out)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestAsideFetchesOnceThenServesFromCache(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	load := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			*dest = cachedUser{ID: 7, Name: "Ayesha"}
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, load(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Ayesha", first.Name)

	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, load(&second)))
	assert.Equal(t, 1, fetches, "second read must be served from cache")
	assert.Equal(t, "Ayesha", second.Name)
}

func TestAsideRefetchesAfterInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest cachedUser
	load := func() error {
		fetches++
		dest = cachedUser{ID: 7, Name: "Ayesha"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(7), &dest, UserTTL, load))
	InvalidateUser(ctx, 7)
	require.NoError(t, Aside(ctx, UserKey(7), &dest, UserTTL, load))
	assert.Equal(t, 2, fetches)
}

func TestAsideWorksWithoutRedis(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest cachedUser
	load := func() error {
		fetches++
		dest = cachedUser{ID: 7, Name: "Ayesha"}
		return nil
	}

	// Every call falls through to the loader; nothing errors.
	assert.NoError(t, Aside(context.Background(), UserKey(7), &dest, time.Minute, load))
	assert.NoError(t, Aside(context.Background(), UserKey(7), &dest, time.Minute, load))
	assert.Equal(t, 2, fetches)
}

func TestAsideExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest int64
	load := func() error {
		fetches++
		dest = 42
		return nil
	}

	require.NoError(t, Aside(ctx, LikeCountKey(5), &dest, LikeCountTTL, load))
	mr.FastForward(LikeCountTTL + time.Second)
	require.NoError(t, Aside(ctx, LikeCountKey(5), &dest, LikeCountTTL, load))
	assert.Equal(t, 2, fetches)
}
