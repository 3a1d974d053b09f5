package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/renthub/internal/model"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return sqlx.NewDb(conn, "postgres"), mock
}

var paymentRowColumns = []string{
	"id", "lease_id", "user_id", "amount", "payment_date", "status",
	"transaction_id", "gateway_status", "payment_method", "ctime",
	"property_id", "rental_transaction_id", "bhk", "property_type", "address",
}

func TestUserRepoGetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM users WHERE .*email=\$1`).
		WithArgs("a@b.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userFields).AddRow(int64(1), "a@b.com", int64(9876543210), "hash", int64(10), int64(11)))

	user, err := NewUserRepo(db).GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, int64(9876543210), user.MobileNo)
	require.Equal(t, "hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM users`).WillReturnRows(sqlmock.NewRows(userFields))

	_, err := NewUserRepo(db).GetByEmail(context.Background(), "missing@b.com")
	require.ErrorIs(t, err, appErr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoListAll(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows(userFields).
			AddRow(int64(1), "a@b.com", int64(1), "h1", int64(0), int64(0)).
			AddRow(int64(2), "c@d.com", int64(2), "h2", int64(0), int64(0)))

	users, err := NewUserRepo(db).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "c@d.com", users[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoUpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE users SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, NewUserRepo(db).UpdatePassword(context.Background(), 1, "new-hash", 100))

	mock.ExpectExec(`UPDATE users SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := NewUserRepo(db).UpdatePassword(context.Background(), 2, "new-hash", 100)
	require.ErrorIs(t, err, appErr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaseRepoGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM leases l\s+JOIN rental_transactions t`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "transaction_id", "tenant_id", "bhk", "property_type", "address"}).
			AddRow(int64(3), int64(4), int64(5), int64(6), 2, "Apartment", "12 Baker Street"))

	lease, err := NewLeaseRepo(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, model.Lease{
		ID:            3,
		PropertyID:    4,
		TransactionID: 5,
		TenantID:      6,
		BHK:           2,
		PropertyType:  "Apartment",
		Address:       "12 Baker Street",
	}, *lease)

	mock.ExpectQuery(`FROM leases`).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)
	_, err = NewLeaseRepo(db).GetByID(context.Background(), 9)
	require.ErrorIs(t, err, appErr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoGetByLeaseAndDate(t *testing.T) {
	db, mock := newMockDB(t)
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM payments WHERE`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(paymentFields))

	_, err := NewPaymentRepo(db).GetByLeaseAndDate(context.Background(), 3, date)
	require.ErrorIs(t, err, appErr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM payments p\s+JOIN leases l.*WHERE p.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).
			AddRow(int64(7), int64(3), int64(6), 1200.5, date, "Completed", "pi_1", "succeeded", "card", int64(100),
				int64(4), int64(5), 2, "Apartment", "12 Baker Street"))

	row, err := NewPaymentRepo(db).GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), row.ID)
	require.Equal(t, "pi_1", row.TransactionID)
	require.Equal(t, int64(5), row.RentalTxID)
	require.Equal(t, "12 Baker Street", row.Address)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`WHERE l.property_id = \$1 AND l.transaction_id = \$2`).
		WithArgs(int64(4), int64(5)).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns))

	rows, err := NewPaymentRepo(db).ListByPropertyAndTransaction(context.Background(), 4, 5)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func newCompletedPayment() *model.Payment {
	return &model.Payment{
		LeaseID:     3,
		UserID:      6,
		Amount:      1200.5,
		PaymentDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.PaymentStatusCompleted,
		PaymentInfo: model.PaymentInfo{
			TransactionID: "pi_1",
			GatewayStatus: "succeeded",
			PaymentMethod: "card",
		},
		Ctime: 100,
	}
}

func TestPaymentRepoCreateCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(int64(3), int64(6), 1200.5, "2026-10-01", "Completed", "pi_1", "succeeded", "card", int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`UPDATE rental_transactions SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE properties SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment := newCompletedPayment()
	err := NewPaymentRepo(db).CreateCompleted(context.Background(), payment, &model.Lease{ID: 3, PropertyID: 4, TransactionID: 5, TenantID: 6})
	require.NoError(t, err)
	require.Equal(t, int64(11), payment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoCreateCompletedDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO payments`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := NewPaymentRepo(db).CreateCompleted(context.Background(), newCompletedPayment(), &model.Lease{ID: 3, PropertyID: 4, TransactionID: 5})
	require.ErrorIs(t, err, appErr.ErrDuplicatePayment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoCreateCompletedRollsBackOnStatusFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO payments`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`UPDATE rental_transactions SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE properties SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewPaymentRepo(db).CreateCompleted(context.Background(), newCompletedPayment(), &model.Lease{ID: 3, PropertyID: 4, TransactionID: 5})
	require.ErrorIs(t, err, appErr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
