package errcode

const (
	ErrUnknown = 10000000 + iota
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrInvalid
	ErrConflict
	ErrTooMany
	ErrInternal
	ErrValidation
)

const (
	ErrUserNotFound = 20000000 + iota
	ErrInvalidIdentifier
	ErrInvalidOtp
	ErrOtpExpired
	ErrWeakPassword
	ErrDeliveryFailed
)

const (
	ErrLeaseNotFound = 30000000 + iota
	ErrDuplicatePayment
	ErrGatewayDeclined
	ErrPaymentNotFound
)
