package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	noDelay := []time.Duration{0, 0, 0}

	t.Run("returns first successful response", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "ok", nil
		}

		html, err := crawl.FetchWithRetry(context.Background(), "u", fetch, noDelay, nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success and reports attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("temporary")
			}
			return "ok", nil
		}
		var attempts []int
		onRetry := func(_ string, attempt int, err error) {
			assert.EqualError(t, err, "temporary")
			attempts = append(attempts, attempt)
		}

		html, err := crawl.FetchWithRetry(context.Background(), "u", fetch, noDelay, onRetry)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, []int{2, 3}, attempts)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("down")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "u", fetch, noDelay, nil)

		require.EqualError(t, err, "down")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry missing pages", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", sharh.Errorf(sharh.ENOTFOUND, "HTTP 404 for u")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "u", fetch, noDelay, nil)

		assert.Equal(t, sharh.ENOTFOUND, sharh.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("down")
		}

		_, err := crawl.FetchWithRetry(ctx, "u", fetch, []time.Duration{time.Hour}, nil)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("default delays back off exponentially", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.DefaultRetryDelays())
	})
}
