package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffleon2/draftea-checkout-service/internal/cache"
)

func newRedisLocker(t *testing.T, ttl time.Duration) (*cache.RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	locker := cache.NewRedisLocker(mr.Addr(), "", ttl)
	t.Cleanup(func() { _ = locker.Close() })
	return locker, mr
}

func TestRedisLocker_Ping(t *testing.T) {
	locker, _ := newRedisLocker(t, time.Minute)

	assert.NoError(t, locker.Ping(context.Background()))
}

func TestRedisLocker_SerializesSameKey(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Minute)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "tx")
	require.NoError(t, err)
	assert.True(t, mr.Exists("checkout:lock:tx"))

	acquired := make(chan func())
	go func() {
		second, err := locker.Lock(ctx, "tx")
		if assert.NoError(t, err) {
			acquired <- second
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(150 * time.Millisecond):
	}

	unlock()

	select {
	case second := <-acquired:
		second()
	case <-time.After(time.Second):
		t.Fatal("second lock not acquired after release")
	}
	assert.False(t, mr.Exists("checkout:lock:tx"))
}

func TestRedisLocker_ContextCancelledWhileWaiting(t *testing.T) {
	locker, _ := newRedisLocker(t, time.Minute)

	unlock, err := locker.Lock(context.Background(), "tx")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	release, err := locker.Lock(ctx, "tx")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, release)
}

func TestRedisLocker_ExpiredLockNotReleasedByOldOwner(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Second)
	ctx := context.Background()

	first, err := locker.Lock(ctx, "tx")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists("checkout:lock:tx"))

	second, err := locker.Lock(ctx, "tx")
	require.NoError(t, err)

	first()
	assert.True(t, mr.Exists("checkout:lock:tx"))

	second()
	assert.False(t, mr.Exists("checkout:lock:tx"))
}
