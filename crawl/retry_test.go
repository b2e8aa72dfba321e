package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/webreduce/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	fastDelays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns immediately on success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "body", nil
		}

		body, err := crawl.FetchWithRetryDelays(context.Background(), "https://ex.com/", fetch, nil, fastDelays)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "body", nil
		}

		body, err := crawl.FetchWithRetryDelays(context.Background(), "https://ex.com/", fetch, nil, fastDelays)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		lastErr := errors.New("still down")
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", lastErr
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://ex.com/", fetch, nil, fastDelays)

		require.Error(t, err)
		assert.Equal(t, lastErr, err)
		assert.Equal(t, 3, calls) // 1 initial + 2 retries
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("transient")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "https://ex.com/", fetch, nil, []time.Duration{time.Minute})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
