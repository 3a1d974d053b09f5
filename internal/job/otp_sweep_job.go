package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type otpSweeper interface {
	Sweep(now time.Time, grace time.Duration) int
}

// OtpSweepJob drops passcodes that expired long enough ago that no client
// can still expect an expiry answer for them.
type OtpSweepJob struct {
	store otpSweeper
	grace time.Duration
	now   func() time.Time
}

func NewOtpSweepJob(store otpSweeper, grace time.Duration) *OtpSweepJob {
	return &OtpSweepJob{store: store, grace: grace, now: time.Now}
}

func (j *OtpSweepJob) Name() string {
	return "otp_sweep"
}

func (j *OtpSweepJob) Run(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	removed := j.store.Sweep(j.now(), j.grace)
	if removed > 0 {
		logutil.GetLogger(ctx).Info("expired otp records removed", zap.Int("count", removed))
	}
	return nil
}
