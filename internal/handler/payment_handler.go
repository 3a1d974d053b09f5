package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/renthub/internal/model"
	"github.com/xxxsen/renthub/internal/pkg/errcode"
	"github.com/xxxsen/renthub/internal/pkg/response"
	"github.com/xxxsen/renthub/internal/pkg/timeutil"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, attempt model.PaymentAttempt) (*model.PaymentView, error)
	GetPayment(ctx context.Context, id int64) (*model.PaymentView, error)
	ListAll(ctx context.Context) ([]model.PaymentView, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.PaymentView, error)
	ListByPropertyAndTransaction(ctx context.Context, propertyID, transactionID int64) ([]model.PaymentView, error)
	ListByUser(ctx context.Context, userID int64) ([]model.TenantPaymentView, error)
}

type PaymentHandler struct {
	payments  PaymentService
	validator *requestValidator
}

func NewPaymentHandler(payments PaymentService, validator *requestValidator) *PaymentHandler {
	return &PaymentHandler{payments: payments, validator: validator}
}

type createPaymentRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate     string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethodID string  `json:"payment_method_id" validate:"required"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	leaseID, ok := parseIDParam(c, "lease_id")
	if !ok {
		return
	}
	var req createPaymentRequest
	if !h.validator.bind(c, &req) {
		return
	}
	date, err := timeutil.ParseDate(req.PaymentDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, errcode.ErrValidation, "invalid payment_date")
		return
	}
	view, err := h.payments.CreatePayment(c.Request.Context(), model.PaymentAttempt{
		LeaseID:            leaseID,
		Amount:             req.Amount,
		PaymentDate:        date,
		PaymentMethodToken: req.PaymentMethodID,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.payments.GetPayment(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *PaymentHandler) List(c *gin.Context) {
	views, err := h.payments.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, views)
}

func (h *PaymentHandler) ListByProperty(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "property_id")
	if !ok {
		return
	}
	views, err := h.payments.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, views)
}

func (h *PaymentHandler) ListByPropertyAndTransaction(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "property_id")
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(c, "transaction_id")
	if !ok {
		return
	}
	views, err := h.payments.ListByPropertyAndTransaction(c.Request.Context(), propertyID, transactionID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, views)
}

func (h *PaymentHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	h.listTenant(c, userID)
}

// ListMine lists the payments of the authenticated tenant.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	h.listTenant(c, getUserID(c))
}

func (h *PaymentHandler) listTenant(c *gin.Context, userID int64) {
	views, err := h.payments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, views)
}
