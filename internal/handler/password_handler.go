package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/renthub/internal/pkg/response"
)

type PasswordResetService interface {
	InitiateReset(ctx context.Context, identifier string) error
	VerifyOtp(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type PasswordHandler struct {
	resets    PasswordResetService
	validator *requestValidator
}

func NewPasswordHandler(resets PasswordResetService, validator *requestValidator) *PasswordHandler {
	return &PasswordHandler{resets: resets, validator: validator}
}

type forgotPasswordRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type verifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

func (h *PasswordHandler) Forgot(c *gin.Context) {
	var req forgotPasswordRequest
	if !h.validator.bind(c, &req) {
		return
	}
	if err := h.resets.InitiateReset(c.Request.Context(), req.Identifier); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, "OTP sent successfully to "+req.Identifier)
}

func (h *PasswordHandler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if !h.validator.bind(c, &req) {
		return
	}
	if err := h.resets.VerifyOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, "OTP verified successfully")
}

func (h *PasswordHandler) Reset(c *gin.Context) {
	var req resetPasswordRequest
	if !h.validator.bind(c, &req) {
		return
	}
	if err := h.resets.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, "Password reset successfully")
}
