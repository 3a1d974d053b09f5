package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/renthub/internal/model"
	"github.com/xxxsen/renthub/internal/otp"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/password"
)

type PasswordResetService struct {
	users    UserDirectory
	store    *otp.Store
	notifier OtpNotifier
	ttl      time.Duration
	now      func() time.Time
	newCode  func() (string, error)
}

func NewPasswordResetService(users UserDirectory, store *otp.Store, notifier OtpNotifier, ttl time.Duration) *PasswordResetService {
	return &PasswordResetService{
		users:    users,
		store:    store,
		notifier: notifier,
		ttl:      ttl,
		now:      time.Now,
		newCode:  newOtpCode,
	}
}

// InitiateReset issues a fresh code for the account behind identifier and
// mails it to the account's email. Any earlier code for that account stops
// working.
func (s *PasswordResetService) InitiateReset(ctx context.Context, identifier string) error {
	id, err := ParseIdentifier(identifier)
	if err != nil {
		return err
	}
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	s.store.Put(model.OtpRecord{
		Code:      code,
		Email:     user.Email,
		ExpiresAt: s.now().Add(s.ttl),
	})
	if err := s.notifier.SendOtpEmail(ctx, user.Email, code); err != nil {
		logutil.GetLogger(ctx).Error("send otp email failed", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", appErr.ErrDeliveryFailed, err)
	}
	return nil
}

func (s *PasswordResetService) findUser(ctx context.Context, id Identifier) (*model.User, error) {
	switch id.Kind {
	case IdentifierEmail:
		user, err := s.users.GetByEmail(ctx, id.Email)
		if err != nil {
			if errors.Is(err, appErr.ErrNotFound) {
				return nil, appErr.ErrUserNotFound
			}
			return nil, err
		}
		return user, nil
	case IdentifierMobile:
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for i := range users {
			// zero is stored for accounts without a mobile number
			if users[i].MobileNo != 0 && users[i].MobileNo == id.Mobile {
				return &users[i], nil
			}
		}
		return nil, appErr.ErrUserNotFound
	}
	return nil, appErr.ErrInvalidIdentifier
}

func (s *PasswordResetService) VerifyOtp(ctx context.Context, email, code string) error {
	if err := s.store.Verify(email, code, s.now()); err != nil {
		logutil.GetLogger(ctx).Warn("otp verification failed", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword replaces the account password once code checks out. The
// code is consumed only when the update succeeds.
func (s *PasswordResetService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyOtp(ctx, email, code); err != nil {
		return err
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return appErr.ErrUserNotFound
		}
		return err
	}
	if !password.IsStrong(newPassword) {
		return appErr.ErrWeakPassword
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, s.now().Unix()); err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return appErr.ErrUserNotFound
		}
		return err
	}
	s.store.CompareAndDelete(email, code)
	logutil.GetLogger(ctx).Info("password reset", zap.Int64("user_id", user.ID))
	return nil
}
