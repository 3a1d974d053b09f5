package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xxxsen/renthub/internal/model"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
)

const leaseByIDQuery = `SELECT l.id, l.property_id, l.transaction_id, t.user_id AS tenant_id,
p.bhk, p.property_type, p.address
FROM leases l
JOIN rental_transactions t ON t.id = l.transaction_id
JOIN properties p ON p.id = l.property_id
WHERE l.id = $1`

type LeaseRepo struct {
	db *sqlx.DB
}

func NewLeaseRepo(db *sqlx.DB) *LeaseRepo {
	return &LeaseRepo{db: db}
}

func (r *LeaseRepo) GetByID(ctx context.Context, leaseID int64) (*model.Lease, error) {
	var lease model.Lease
	if err := r.db.GetContext(ctx, &lease, leaseByIDQuery, leaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &lease, nil
}
