package service

import (
	"context"
	"time"

	"github.com/xxxsen/renthub/internal/model"
)

type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, mtime int64) error
}

type LeaseDirectory interface {
	GetByID(ctx context.Context, leaseID int64) (*model.Lease, error)
}

type PaymentDirectory interface {
	GetByLeaseAndDate(ctx context.Context, leaseID int64, date time.Time) (*model.Payment, error)
	// CreateCompleted persists the payment together with the rental
	// transaction and property status changes, atomically.
	CreateCompleted(ctx context.Context, payment *model.Payment, lease *model.Lease) error
	GetByID(ctx context.Context, id int64) (*model.PaymentRow, error)
	List(ctx context.Context) ([]model.PaymentRow, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]model.PaymentRow, error)
	ListByPropertyAndTransaction(ctx context.Context, propertyID, transactionID int64) ([]model.PaymentRow, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PaymentRow, error)
}
