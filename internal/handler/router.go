package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/renthub/internal/middleware"
)

type RouterDeps struct {
	Passwords  *PasswordHandler
	Payments   *PaymentHandler
	Properties *PropertiesHandler
	JWTSecret  []byte
	RateLimit  time.Duration
}

// NewRouterDeps builds the handlers that share one request validator.
func NewRouterDeps(resets PasswordResetService, payments PaymentService, properties *PropertiesHandler, jwtSecret []byte, rateLimit time.Duration) (RouterDeps, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return RouterDeps{}, err
	}
	return RouterDeps{
		Passwords:  NewPasswordHandler(resets, validator),
		Payments:   NewPaymentHandler(payments, validator),
		Properties: properties,
		JWTSecret:  jwtSecret,
		RateLimit:  rateLimit,
	}, nil
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/properties", deps.Properties.Get)

	passwordGroup := api.Group("/auth/password")
	passwordGroup.Use(middleware.RateLimit(deps.RateLimit))
	passwordGroup.POST("/forgot", deps.Passwords.Forgot)
	passwordGroup.POST("/verify-otp", deps.Passwords.VerifyOtp)
	passwordGroup.POST("/reset", deps.Passwords.Reset)

	paymentGroup := api.Group("/payments")
	paymentGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	paymentGroup.POST("/lease/:lease_id", deps.Payments.Create)
	paymentGroup.GET("", deps.Payments.List)
	paymentGroup.GET("/me", deps.Payments.ListMine)
	paymentGroup.GET("/:id", deps.Payments.Get)
	paymentGroup.GET("/property/:property_id", deps.Payments.ListByProperty)
	paymentGroup.GET("/property/:property_id/transaction/:transaction_id", deps.Payments.ListByPropertyAndTransaction)
	paymentGroup.GET("/user/:user_id", deps.Payments.ListByUser)
}
