package errors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalid      = errors.New("invalid")
	ErrConflict     = errors.New("conflict")
	ErrTooMany      = errors.New("too many requests")
	ErrInternal     = errors.New("internal")

	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidIdentifier = errors.New("invalid mobile number format")
	ErrInvalidOtp        = errors.New("invalid otp")
	ErrOtpExpired        = errors.New("otp has expired")
	ErrWeakPassword      = errors.New("password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrDeliveryFailed    = errors.New("failed to send otp")

	ErrLeaseNotFound    = errors.New("lease not found")
	ErrDuplicatePayment = errors.New("duplicate payment detected")
	ErrGatewayDeclined  = errors.New("payment processing failed")
	ErrPaymentNotFound  = errors.New("payment not found")

	ErrValidation = errors.New("validation failed")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
