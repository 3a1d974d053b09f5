package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeIntents struct {
	params *stripe.PaymentIntentParams
	intent *stripe.PaymentIntent
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = params
	return f.intent, f.err
}

func TestStripeCreateCharge(t *testing.T) {
	fake := &fakeIntents{intent: &stripe.PaymentIntent{
		ID:                 "pi_123",
		Status:             stripe.PaymentIntentStatusSucceeded,
		PaymentMethodTypes: []string{"card"},
	}}
	client := &StripeClient{intents: fake}

	res, err := client.CreateCharge(context.Background(), ChargeRequest{
		AmountMinor:        120050,
		Currency:           "usd",
		PaymentMethodToken: "pm_card_visa",
		Description:        "Rent payment for lease ID: 3",
	})
	require.NoError(t, err)
	require.Equal(t, &ChargeResult{ID: "pi_123", Status: StatusSucceeded, PaymentMethodTypes: []string{"card"}}, res)

	p := fake.params
	require.Equal(t, int64(120050), *p.Amount)
	require.Equal(t, "usd", *p.Currency)
	require.Equal(t, "pm_card_visa", *p.PaymentMethod)
	require.True(t, *p.Confirm)
	require.Equal(t, "Rent payment for lease ID: 3", *p.Description)
	require.True(t, *p.AutomaticPaymentMethods.Enabled)
	require.Equal(t, "never", *p.AutomaticPaymentMethods.AllowRedirects)
	require.NotNil(t, p.Context)
}

func TestStripeCreateChargeErrors(t *testing.T) {
	client := &StripeClient{intents: &fakeIntents{err: &stripe.Error{
		Code:        stripe.ErrorCodeCardDeclined,
		DeclineCode: "insufficient_funds",
		Msg:         "Your card has insufficient funds.",
	}}}
	_, err := client.CreateCharge(context.Background(), ChargeRequest{})
	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, "insufficient_funds", gwErr.Code)
	require.Equal(t, "Your card has insufficient funds. (code: insufficient_funds)", gwErr.Error())

	client = &StripeClient{intents: &fakeIntents{err: errors.New("dial tcp: i/o timeout")}}
	_, err = client.CreateCharge(context.Background(), ChargeRequest{})
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, "dial tcp: i/o timeout", gwErr.Error())
}

func TestToMinorUnits(t *testing.T) {
	require.Equal(t, int64(120050), ToMinorUnits(1200.50))
	require.Equal(t, int64(1999), ToMinorUnits(19.999))
	require.Equal(t, int64(0), ToMinorUnits(0.004))
}
