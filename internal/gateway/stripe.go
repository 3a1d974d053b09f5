package gateway

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

const allowRedirectsNever = "never"

type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeClient struct {
	intents paymentIntentCreator
}

func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		intents: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: apiKey},
	}
}

func (c *StripeClient) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	intent, err := c.intents.New(buildIntentParams(ctx, req))
	if err != nil {
		return nil, asGatewayError(err)
	}
	return &ChargeResult{
		ID:                 intent.ID,
		Status:             string(intent.Status),
		PaymentMethodTypes: intent.PaymentMethodTypes,
	}, nil
}

// buildIntentParams confirms the intent immediately and lets the processor
// pick the method type, but never through a redirect flow.
func buildIntentParams(ctx context.Context, req ChargeRequest) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodToken),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(allowRedirectsNever),
		},
	}
	params.Context = ctx
	return params
}

func asGatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		code := string(stripeErr.Code)
		if stripeErr.DeclineCode != "" {
			code = string(stripeErr.DeclineCode)
		}
		return &Error{Code: code, Message: stripeErr.Msg}
	}
	return &Error{Message: err.Error()}
}
