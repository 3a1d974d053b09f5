package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"github.com/xxxsen/renthub/internal/model"
	"github.com/xxxsen/renthub/internal/pkg/dbutil"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
)

var userFields = []string{"id", "email", "mobile_no", "password_hash", "ctime", "mtime"}

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	where := map[string]interface{}{"email": email, "_limit": []uint{0, 1}}
	sqlStr, args, err := builder.BuildSelect("users", where, userFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var user model.User
	if err := r.db.GetContext(ctx, &user, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	where := map[string]interface{}{"_orderby": "id asc"}
	sqlStr, args, err := builder.BuildSelect("users", where, userFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, sqlStr, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string, mtime int64) error {
	where := map[string]interface{}{"id": userID}
	update := map[string]interface{}{
		"password_hash": passwordHash,
		"mtime":         mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("users", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
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
