package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	t.Cleanup(Close)
	return mr
}

func TestAside_CachesLoadedValue(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *[]string) func() error {
		return func() error {
			loads++
			*dest = []string{"a", "b"}
			return nil
		}
	}

	var first []string
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, load(&first)))
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, loads)

	// Second call is served from the cache
	var second []string
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, load(&second)))
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 1, loads)
}

func TestAside_InvalidateForcesReload(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	var got []string
	load := func() error {
		loads++
		got = []string{"fresh"}
		return nil
	}

	require.NoError(t, Aside(ctx, UsersListKey, &got, UsersListTTL, load))
	InvalidateUsers(ctx)
	require.NoError(t, Aside(ctx, UsersListKey, &got, UsersListTTL, load))
	assert.Equal(t, 2, loads)
}

func TestAside_LoadErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var got []string
	err := Aside(ctx, "k", &got, time.Minute, func() error {
		return assert.AnError
	})
	require.Error(t, err)

	loads := 0
	require.NoError(t, Aside(ctx, "k", &got, time.Minute, func() error {
		loads++
		got = []string{"ok"}
		return nil
	}))
	assert.Equal(t, 1, loads)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	Close()

	loads := 0
	var got []string
	require.NoError(t, Aside(context.Background(), "k", &got, time.Minute, func() error {
		loads++
		return nil
	}))
	require.NoError(t, Aside(context.Background(), "k", &got, time.Minute, func() error {
		loads++
		return nil
	}))
	assert.Equal(t, 2, loads)
}
