package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"github.com/xxxsen/renthub/internal/model"
	"github.com/xxxsen/renthub/internal/pkg/dbutil"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/timeutil"
)

var paymentFields = []string{
	"id", "lease_id", "user_id", "amount", "payment_date", "status",
	"transaction_id", "gateway_status", "payment_method", "ctime",
}

const paymentRowSelect = `SELECT p.id, p.lease_id, p.user_id, p.amount, p.payment_date, p.status,
p.transaction_id, p.gateway_status, p.payment_method, p.ctime,
l.property_id, l.transaction_id AS rental_transaction_id,
pr.bhk, pr.property_type, pr.address
FROM payments p
JOIN leases l ON l.id = p.lease_id
JOIN properties pr ON pr.id = l.property_id`

const insertPaymentSQL = `INSERT INTO payments
(lease_id, user_id, amount, payment_date, status, transaction_id, gateway_status, payment_method, ctime)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

type PaymentRepo struct {
	db *sqlx.DB
}

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) GetByLeaseAndDate(ctx context.Context, leaseID int64, date time.Time) (*model.Payment, error) {
	where := map[string]interface{}{
		"lease_id":     leaseID,
		"payment_date": timeutil.FormatDate(date),
		"_limit":       []uint{0, 1},
	}
	sqlStr, args, err := builder.BuildSelect("payments", where, paymentFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var payment model.Payment
	if err := r.db.GetContext(ctx, &payment, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*model.PaymentRow, error) {
	var row model.PaymentRow
	if err := r.db.GetContext(ctx, &row, paymentRowSelect+" WHERE p.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]model.PaymentRow, error) {
	return r.selectRows(ctx, "")
}

func (r *PaymentRepo) ListByProperty(ctx context.Context, propertyID int64) ([]model.PaymentRow, error) {
	return r.selectRows(ctx, " WHERE l.property_id = $1", propertyID)
}

func (r *PaymentRepo) ListByPropertyAndTransaction(ctx context.Context, propertyID, transactionID int64) ([]model.PaymentRow, error) {
	return r.selectRows(ctx, " WHERE l.property_id = $1 AND l.transaction_id = $2", propertyID, transactionID)
}

func (r *PaymentRepo) ListByUser(ctx context.Context, userID int64) ([]model.PaymentRow, error) {
	return r.selectRows(ctx, " WHERE p.user_id = $1", userID)
}

func (r *PaymentRepo) selectRows(ctx context.Context, where string, args ...interface{}) ([]model.PaymentRow, error) {
	rows := make([]model.PaymentRow, 0)
	query := paymentRowSelect + where + " ORDER BY p.payment_date DESC, p.id DESC"
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCompleted stores a confirmed payment and moves the lease's rental
// transaction to Completed and its property to Rented, all in one transaction.
func (r *PaymentRepo) CreateCompleted(ctx context.Context, payment *model.Payment, lease *model.Lease) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowxContext(ctx, insertPaymentSQL,
		payment.LeaseID,
		payment.UserID,
		payment.Amount,
		timeutil.FormatDate(payment.PaymentDate),
		payment.Status,
		payment.TransactionID,
		payment.GatewayStatus,
		payment.PaymentMethod,
		payment.Ctime,
	).Scan(&payment.ID)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrDuplicatePayment
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	if err := updateStatus(ctx, tx, "rental_transactions", lease.TransactionID, map[string]interface{}{
		"status": model.TransactionStatusCompleted,
		"mtime":  payment.Ctime,
	}); err != nil {
		return fmt.Errorf("update rental transaction: %w", err)
	}
	if err := updateStatus(ctx, tx, "properties", lease.PropertyID, map[string]interface{}{
		"availability_status": model.PropertyStatusRented,
		"mtime":               payment.Ctime,
	}); err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return tx.Commit()
}

func updateStatus(ctx context.Context, tx *sqlx.Tx, table string, id int64, update map[string]interface{}) error {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildUpdate(table, where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := tx.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
