package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quick(attempts int) Config {
	return Config{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		err := Do(ctx, quick(3), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		var retried []int
		cfg := quick(5)
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			retried = append(retried, attempt)
		}

		err := Do(ctx, cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{1, 2}, retried)
	})

	t.Run("returns the last error when attempts run out", func(t *testing.T) {
		calls := 0
		err := Do(ctx, quick(3), func() error {
			calls++
			return errors.New("still down")
		})

		assert.EqualError(t, err, "still down")
		assert.Equal(t, 3, calls)
	})

	t.Run("non retryable error stops immediately", func(t *testing.T) {
		cfg := quick(5)
		cfg.RetryableErrors = []string{"connection refused"}
		calls := 0

		err := Do(ctx, cfg, func() error {
			calls++
			return errors.New("password authentication failed")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("invalid config", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDoWithResult(t *testing.T) {
	calls := 0
	got, err := DoWithResult(context.Background(), quick(3), func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("i/o timeout")
		}
		return "connected", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "connected", got)
}

func TestDo_ContextCancelled(t *testing.T) {
	t.Run("before the first attempt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Do(ctx, quick(3), func() error {
			t.Fatal("must not be called")
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("while waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		cfg := Config{MaxAttempts: 10, InitialDelay: time.Second, MaxDelay: time.Second, Multiplier: 1}

		start := time.Now()
		err := Do(ctx, cfg, func() error { return errors.New("down") })

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, calculateDelay(-1, cfg))
	assert.Equal(t, 100*time.Millisecond, calculateDelay(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateDelay(2, cfg))
	assert.Equal(t, time.Second, calculateDelay(10, cfg))
}

func TestAddJitter(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := addJitter(time.Second)
		assert.GreaterOrEqual(t, d, 900*time.Millisecond)
		assert.LessOrEqual(t, d, 1100*time.Millisecond)
	}
	assert.Equal(t, time.Duration(0), addJitter(0))
}

func TestIsRetryableError(t *testing.T) {
	pg := PostgresConfig()

	tests := []struct {
		name string
		err  error
		cfg  Config
		want bool
	}{
		{"nil", nil, DefaultConfig(), false},
		{"any error without patterns", errors.New("boom"), DefaultConfig(), true},
		{"cancelled context", context.Canceled, DefaultConfig(), false},
		{"matching pattern", errors.New("dial tcp 10.0.0.1:5432: Connection Refused"), pg, true},
		{"starting up", errors.New("FATAL: the database system is starting up"), pg, true},
		{"authentication", errors.New("password authentication failed"), pg, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err, tt.cfg))
		})
	}
}
