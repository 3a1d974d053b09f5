package gateway

import (
	"context"
	"fmt"
)

// StatusSucceeded is the only charge status that counts as paid.
const StatusSucceeded = "succeeded"

type ChargeRequest struct {
	AmountMinor        int64
	Currency           string
	PaymentMethodToken string
	Description        string
}

type ChargeResult struct {
	ID                 string
	Status             string
	PaymentMethodTypes []string
}

// Client creates charges at the payment processor. Calls block until the
// processor answers or its client-side timeout fires.
type Client interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Error carries the processor's own code and message for a failed call.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// ToMinorUnits converts a major-unit amount to cents, truncating any
// fraction below one cent.
func ToMinorUnits(amount float64) int64 {
	return int64(amount * 100)
}
