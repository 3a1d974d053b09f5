package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/renthub/internal/middleware"
	"github.com/xxxsen/renthub/internal/pkg/errcode"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/response"
)

type errorMapping struct {
	target error
	status int
	code   int
}

// Order matters: domain errors first, generic classes last.
var errorMappings = []errorMapping{
	{appErr.ErrUserNotFound, http.StatusBadRequest, errcode.ErrUserNotFound},
	{appErr.ErrInvalidIdentifier, http.StatusBadRequest, errcode.ErrInvalidIdentifier},
	{appErr.ErrInvalidOtp, http.StatusBadRequest, errcode.ErrInvalidOtp},
	{appErr.ErrOtpExpired, http.StatusBadRequest, errcode.ErrOtpExpired},
	{appErr.ErrWeakPassword, http.StatusBadRequest, errcode.ErrWeakPassword},
	{appErr.ErrDeliveryFailed, http.StatusInternalServerError, errcode.ErrDeliveryFailed},
	{appErr.ErrLeaseNotFound, http.StatusNotFound, errcode.ErrLeaseNotFound},
	{appErr.ErrDuplicatePayment, http.StatusConflict, errcode.ErrDuplicatePayment},
	{appErr.ErrGatewayDeclined, http.StatusPaymentRequired, errcode.ErrGatewayDeclined},
	{appErr.ErrPaymentNotFound, http.StatusNotFound, errcode.ErrPaymentNotFound},
	{appErr.ErrValidation, http.StatusBadRequest, errcode.ErrValidation},
	{appErr.ErrUnauthorized, http.StatusUnauthorized, errcode.ErrUnauthorized},
	{appErr.ErrForbidden, http.StatusForbidden, errcode.ErrForbidden},
	{appErr.ErrNotFound, http.StatusNotFound, errcode.ErrNotFound},
	{appErr.ErrInvalid, http.StatusBadRequest, errcode.ErrInvalid},
	{appErr.ErrConflict, http.StatusConflict, errcode.ErrConflict},
	{appErr.ErrTooMany, http.StatusTooManyRequests, errcode.ErrTooMany},
}

func getUserID(c *gin.Context) int64 {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(int64)
	return userID
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get(middleware.ContextRequestIDKey)
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int64("user_id", getUserID(c)),
		zap.Error(err),
	)
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			response.Error(c, m.status, m.code, err.Error())
			return
		}
	}
	response.Error(c, http.StatusInternalServerError, errcode.ErrInternal, "internal error")
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, errcode.ErrInvalid, "invalid "+name)
		return 0, false
	}
	return id, true
}
