package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const otpSubject = "Password Reset OTP From RentHub Team"

const otpBodyTemplate = `Dear User,

Your One-Time Password (OTP) for resetting your password is: %s
This OTP is valid for %d minutes. Please do not share it with anyone.

If you did not request a password reset, please ignore this email or contact support.

Best regards,
RentHub Team
`

type OtpNotifier interface {
	SendOtpEmail(ctx context.Context, to, code string) error
}

type OtpMailer struct {
	sender EmailSender
	ttl    time.Duration
}

func NewOtpMailer(sender EmailSender, ttl time.Duration) *OtpMailer {
	return &OtpMailer{sender: sender, ttl: ttl}
}

func (m *OtpMailer) SendOtpEmail(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(otpBodyTemplate, code, int(m.ttl/time.Minute))
	if err := m.sender.Send(to, otpSubject, body); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("otp email sent", zap.String("to", to))
	return nil
}
