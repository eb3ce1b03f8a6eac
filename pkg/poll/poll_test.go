package poll

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSuccessFirstAttempt(t *testing.T) {
	t.Parallel()
	attempts := 0
	result, err := Do(context.Background(), func(_ context.Context) (string, error) {
		attempts++
		return "ok", nil
	}, Policy{Interval: time.Hour, Budget: time.Hour, WaitTillDone: true})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestDoNotWaitingReturnsImmediately(t *testing.T) {
	t.Parallel()
	attempts := 0
	start := time.Now()
	_, err := Do(context.Background(), func(_ context.Context) (string, error) {
		attempts++
		return "", errors.New("backend rejected it")
	}, Policy{Interval: time.Hour, Budget: time.Hour, WaitTillDone: false})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotWaiting)
	assert.ErrorContains(t, err, "backend rejected it")
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), time.Second, "must not sleep when not waiting")
}

func TestDoTimeoutWithinBudget(t *testing.T) {
	t.Parallel()
	policy := Policy{Interval: 10 * time.Millisecond, Budget: 50 * time.Millisecond, WaitTillDone: true}
	start := time.Now()
	_, err := Do(context.Background(), func(_ context.Context) (string, error) {
		return "", errors.New("still pending")
	}, policy)
	elapsed := time.Since(start)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Timeout)
	assert.ErrorContains(t, err, "still pending")
	// Terminates within budget + one interval, with some scheduling slack.
	assert.Less(t, elapsed, policy.Budget+policy.Interval+time.Second)
}

func TestDoEventualSuccess(t *testing.T) {
	t.Parallel()
	attempts := 0
	result, err := Do(context.Background(), func(_ context.Context) (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errors.New("not yet")
		}
		return 42, nil
	}, Policy{Interval: time.Millisecond, Budget: time.Second, WaitTillDone: true})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, attempts)
}

func TestDoContextCancelledDuringSleep(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := Do(ctx, func(_ context.Context) (string, error) {
		return "", errors.New("pending")
	}, Policy{Interval: time.Hour, Budget: 2 * time.Hour, WaitTillDone: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
