package poll

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-minter/common/errs"
)

// Policy controls how Do retries a failing operation. There is no attempt
// cap: only the wall-clock Budget bounds the loop.
type Policy struct {
	// Interval is the sleep duration between attempts.
	Interval time.Duration `mapstructure:"interval"`

	// Budget is the total wall-clock time allowed across all attempts.
	Budget time.Duration `mapstructure:"budget"`

	// WaitTillDone enables retrying. If false, the first failure is returned
	// immediately without sleeping.
	WaitTillDone bool `mapstructure:"wait_till_done"`
}

const (
	DefaultInterval = time.Second
	DefaultBudget   = 60 * time.Second
)

// Normalize fills zero fields with defaults.
func (p Policy) Normalize() Policy {
	if p.Interval <= 0 {
		p.Interval = DefaultInterval
	}
	if p.Budget <= 0 {
		p.Budget = DefaultBudget
	}
	return p
}

// Do invokes op until it succeeds, the caller opted out of waiting, or the
// policy's wall-clock budget is exhausted. The outcome is exactly three-way:
//
//   - op succeeded: its value is returned with a nil error.
//   - op failed and WaitTillDone is false: the failure is returned
//     immediately, wrapped with errs.NotWaiting, without sleeping.
//   - the budget elapsed without a success: the last failure is returned
//     wrapped with errs.Timeout.
//
// The sleep between attempts is a real wait and honors ctx cancellation.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), policy Policy) (T, error) {
	var zero T
	policy = policy.Normalize()
	start := time.Now()

	for {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !policy.WaitTillDone {
			return zero, errors.Mark(errors.Wrap(err, "not waiting because WaitTillDone=false"), errs.NotWaiting)
		}

		if sleepErr := sleep(ctx, policy.Interval); sleepErr != nil {
			return zero, errors.CombineErrors(sleepErr, err)
		}

		if time.Since(start) > policy.Budget {
			return zero, errors.Mark(errors.Wrapf(err, "timeout exceeded, wait budget (%s) elapsed, consider raising it", policy.Budget), errs.Timeout)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
