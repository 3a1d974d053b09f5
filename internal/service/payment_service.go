package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/renthub/internal/gateway"
	"github.com/xxxsen/renthub/internal/model"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/timeutil"
)

type PaymentService struct {
	leases   LeaseDirectory
	payments PaymentDirectory
	gateway  gateway.Client
	currency string
	now      func() time.Time
}

func NewPaymentService(leases LeaseDirectory, payments PaymentDirectory, client gateway.Client, currency string) *PaymentService {
	return &PaymentService{
		leases:   leases,
		payments: payments,
		gateway:  client,
		currency: currency,
		now:      time.Now,
	}
}

// CreatePayment charges the tenant for one lease period and, once the
// processor confirms, records the payment and marks the lease's transaction
// and property as settled. Nothing is written when the charge fails.
func (s *PaymentService) CreatePayment(ctx context.Context, attempt model.PaymentAttempt) (*model.PaymentView, error) {
	logger := logutil.GetLogger(ctx).With(zap.Int64("lease_id", attempt.LeaseID))
	lease, err := s.leases.GetByID(ctx, attempt.LeaseID)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return nil, appErr.ErrLeaseNotFound
		}
		return nil, err
	}
	if _, err := s.payments.GetByLeaseAndDate(ctx, lease.ID, attempt.PaymentDate); err == nil {
		logger.Warn("duplicate payment rejected", zap.String("payment_date", timeutil.FormatDate(attempt.PaymentDate)))
		return nil, appErr.ErrDuplicatePayment
	} else if !errors.Is(err, appErr.ErrNotFound) {
		return nil, err
	}

	charge, err := s.gateway.CreateCharge(ctx, gateway.ChargeRequest{
		AmountMinor:        gateway.ToMinorUnits(attempt.Amount),
		Currency:           s.currency,
		PaymentMethodToken: attempt.PaymentMethodToken,
		Description:        fmt.Sprintf("Rent payment for lease ID: %d", lease.ID),
	})
	if err != nil {
		logger.Warn("gateway charge failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", appErr.ErrGatewayDeclined, err)
	}
	if charge.Status != gateway.StatusSucceeded {
		logger.Warn("gateway charge not succeeded", zap.String("charge_id", charge.ID), zap.String("status", charge.Status))
		return nil, fmt.Errorf("%w: status %s", appErr.ErrGatewayDeclined, charge.Status)
	}

	payment := &model.Payment{
		LeaseID:     lease.ID,
		UserID:      lease.TenantID,
		Amount:      attempt.Amount,
		PaymentDate: attempt.PaymentDate,
		Status:      model.PaymentStatusCompleted,
		PaymentInfo: model.PaymentInfo{
			TransactionID: charge.ID,
			GatewayStatus: charge.Status,
			PaymentMethod: firstOrEmpty(charge.PaymentMethodTypes),
		},
		Ctime: s.now().Unix(),
	}
	if err := s.payments.CreateCompleted(ctx, payment, lease); err != nil {
		// the charge has gone through at this point
		logger.Error("record payment failed", zap.String("charge_id", charge.ID), zap.Error(err))
		return nil, err
	}
	logger.Info("payment recorded", zap.Int64("payment_id", payment.ID), zap.String("charge_id", charge.ID))
	return &model.PaymentView{
		ID:           payment.ID,
		LeaseID:      payment.LeaseID,
		Amount:       payment.Amount,
		PaymentDate:  timeutil.FormatDate(payment.PaymentDate),
		Status:       payment.Status,
		PaymentInfo:  payment.PaymentInfo,
		BHK:          lease.BHK,
		PropertyType: lease.PropertyType,
		Address:      lease.Address,
	}, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*model.PaymentView, error) {
	row, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return nil, appErr.ErrPaymentNotFound
		}
		return nil, err
	}
	view := toPaymentView(row)
	return &view, nil
}

func (s *PaymentService) ListAll(ctx context.Context) ([]model.PaymentView, error) {
	rows, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPaymentViews(rows), nil
}

func (s *PaymentService) ListByProperty(ctx context.Context, propertyID int64) ([]model.PaymentView, error) {
	rows, err := s.payments.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return toPaymentViews(rows), nil
}

func (s *PaymentService) ListByPropertyAndTransaction(ctx context.Context, propertyID, transactionID int64) ([]model.PaymentView, error) {
	rows, err := s.payments.ListByPropertyAndTransaction(ctx, propertyID, transactionID)
	if err != nil {
		return nil, err
	}
	return toPaymentViews(rows), nil
}

func (s *PaymentService) ListByUser(ctx context.Context, userID int64) ([]model.TenantPaymentView, error) {
	rows, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]model.TenantPaymentView, 0, len(rows))
	for i := range rows {
		views = append(views, model.TenantPaymentView{
			BHK:           rows[i].BHK,
			PropertyType:  rows[i].PropertyType,
			Address:       rows[i].Address,
			Amount:        rows[i].Amount,
			PaymentDate:   timeutil.FormatDate(rows[i].PaymentDate),
			Status:        rows[i].Status,
			TransactionID: rows[i].TransactionID,
		})
	}
	return views, nil
}

func toPaymentViews(rows []model.PaymentRow) []model.PaymentView {
	views := make([]model.PaymentView, 0, len(rows))
	for i := range rows {
		views = append(views, toPaymentView(&rows[i]))
	}
	return views
}

func toPaymentView(row *model.PaymentRow) model.PaymentView {
	return model.PaymentView{
		ID:           row.ID,
		LeaseID:      row.LeaseID,
		Amount:       row.Amount,
		PaymentDate:  timeutil.FormatDate(row.PaymentDate),
		Status:       row.Status,
		PaymentInfo:  row.PaymentInfo,
		BHK:          row.BHK,
		PropertyType: row.PropertyType,
		Address:      row.Address,
	}
}

func firstOrEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
