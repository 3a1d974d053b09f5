package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/renthub/internal/config"
	"github.com/xxxsen/renthub/internal/pkg/password"
	"github.com/xxxsen/renthub/internal/pkg/response"
)

// passwordPolicy mirrors password.IsStrong so clients can check a new
// password before calling /auth/password/reset.
type passwordPolicy struct {
	MinLength    int    `json:"min_length"`
	MaxBytes     int    `json:"max_bytes"`
	SpecialChars string `json:"special_chars"`
	NoWhitespace bool   `json:"no_whitespace"`
}

type publicSettings struct {
	config.Properties
	RateLimitSeconds int            `json:"rate_limit_seconds"`
	PasswordPolicy   passwordPolicy `json:"password_policy"`
}

// PropertiesHandler serves the settings a client needs before it has a
// token: OTP lifetime, charge currency, request pacing and password rules.
type PropertiesHandler struct {
	settings publicSettings
}

func NewPropertiesHandler(properties config.Properties, rateLimitSeconds int) *PropertiesHandler {
	return &PropertiesHandler{settings: publicSettings{
		Properties:       properties,
		RateLimitSeconds: rateLimitSeconds,
		PasswordPolicy: passwordPolicy{
			MinLength:    password.MinLength,
			MaxBytes:     password.MaxBytes,
			SpecialChars: password.SpecialChars,
			NoWhitespace: true,
		},
	}}
}

func (h *PropertiesHandler) Get(c *gin.Context) {
	response.Success(c, gin.H{"properties": h.settings})
}
