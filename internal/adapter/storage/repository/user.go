package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts the user together with an empty wallet.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		userSt := r.db.QueryBuilder.
			Insert("users").
			Columns("phone", "password", "name", "role").
			Values(user.Phone, user.Password, user.Name, user.Role).
			Suffix("returning id, created_at")

		sql, args, err := userSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}

		walletSt := r.db.QueryBuilder.
			Insert("wallets").
			Columns("user_id", "balance", "frozen_amount").
			Values(user.ID, decimal.Zero, decimal.Zero)

		sql, args, err = walletSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint64) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID})
}

func (r *Repository) getUser(ctx context.Context, where sq.Eq) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "phone", "password", "name", "role", "credit_score", "created_at").
		From("users").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Phone,
		&user.Password,
		&user.Name,
		&user.Role,
		&user.CreditScore,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
