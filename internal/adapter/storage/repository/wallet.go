package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

const walletColumns = "id, user_id, balance, frozen_amount, created_at, updated_at"

const walletTransactionColumns = `t.id, t.wallet_id, t.number, t.amount,
	t.balance_before, t.balance_after, t.transaction_type, t.status,
	t.related_order_id, t.related_payment_id, t.remark, t.created_at, t.updated_at`

// GetOrCreateWallet returns the user's wallet, creating an empty one on
// first touch. Users registered through RegisterUser already have one;
// this covers rows migrated from before wallets existed.
func (r *Repository) GetOrCreateWallet(ctx context.Context, userID uint64) (*domain.Wallet, error) {
	if err := r.ensureWallet(ctx, r.db.Pool, userID); err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.
		Select(walletColumns).
		From("wallets").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	wallet, err := scanWallet(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return wallet, nil
}

// UpdateWallet runs fn on the row-locked wallet, persists the balance
// change and appends the ledger entry fn returned.
func (r *Repository) UpdateWallet(ctx context.Context, userID uint64,
	fn port.UpdateWalletFn) (*domain.WalletTransaction, error) {
	var txn *domain.WalletTransaction
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.ensureWallet(ctx, tx, userID); err != nil {
			return err
		}

		wallet, err := r.readWalletForUpdate(ctx, tx, sq.Eq{"user_id": userID})
		if err != nil {
			return err
		}

		txn, err = fn(wallet)
		if err != nil {
			return err
		}
		if txn == nil {
			return nil
		}

		if err := r.saveWallet(ctx, tx, wallet); err != nil {
			return err
		}

		txn.WalletID = wallet.ID
		return r.insertWalletTransaction(ctx, tx, txn)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return txn, nil
}

// SettleWalletTransaction locks the ledger entry by its business number
// together with its wallet, runs fn and persists both.
func (r *Repository) SettleWalletTransaction(ctx context.Context, number string,
	fn port.SettleWalletFn) (*domain.WalletTransaction, error) {
	var txn *domain.WalletTransaction
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		txn, err = r.readTransactionForUpdate(ctx, tx, number)
		if err != nil {
			return err
		}

		wallet, err := r.readWalletForUpdate(ctx, tx, sq.Eq{"id": txn.WalletID})
		if err != nil {
			return err
		}

		if err := fn(wallet, txn); err != nil {
			return err
		}

		if err := r.saveWallet(ctx, tx, wallet); err != nil {
			return err
		}

		return r.saveWalletTransaction(ctx, tx, txn)
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

func (r *Repository) ListWalletTransactions(ctx context.Context, userID uint64) ([]*domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(walletTransactionColumns).
		From("wallet_transactions t").
		Join("wallets w on w.id = t.wallet_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("t.created_at desc")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.WalletTransaction, 0)
	for rows.Next() {
		txn, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// WalletStatistics folds the user's ledger into per-type totals of
// successful entries and a count of pending ones.
func (r *Repository) WalletStatistics(ctx context.Context, userID uint64) (*domain.WalletStatistics, error) {
	statement := r.db.QueryBuilder.
		Select("t.transaction_type", "t.status", "count(*)", "coalesce(sum(t.amount), 0)").
		From("wallet_transactions t").
		Join("wallets w on w.id = t.wallet_id").
		Where(sq.Eq{"w.user_id": userID}).
		GroupBy("t.transaction_type", "t.status")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := domain.WalletStatistics{}
	for rows.Next() {
		var (
			txnType domain.TransactionType
			status  domain.TransactionStatus
			count   uint64
			total   decimal.Decimal
		)
		if err := rows.Scan(&txnType, &status, &count, &total); err != nil {
			return nil, err
		}

		if status == domain.TransactionStatusPending {
			stats.PendingCount += count
			continue
		}
		if status != domain.TransactionStatusSuccess {
			continue
		}

		switch txnType {
		case domain.TransactionDeposit:
			stats.TotalDeposit = total
		case domain.TransactionWithdraw:
			stats.TotalWithdraw = total
		case domain.TransactionPayment:
			stats.TotalPayment = total
		case domain.TransactionRefund:
			stats.TotalRefund = total
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *Repository) ensureWallet(ctx context.Context, e execer, userID uint64) error {
	statement := r.db.QueryBuilder.
		Insert("wallets").
		Columns("user_id", "balance", "frozen_amount").
		Values(userID, decimal.Zero, decimal.Zero).
		Suffix("on conflict (user_id) do nothing")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) readWalletForUpdate(ctx context.Context, tx pgx.Tx, where sq.Eq) (*domain.Wallet, error) {
	statement := r.db.QueryBuilder.
		Select(walletColumns).
		From("wallets").
		Where(where).
		Suffix("for update")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	wallet, err := scanWallet(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return wallet, nil
}

func (r *Repository) saveWallet(ctx context.Context, e execer, wallet *domain.Wallet) error {
	statement := r.db.QueryBuilder.
		Update("wallets").
		Set("balance", wallet.Balance).
		Set("frozen_amount", wallet.FrozenAmount).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": wallet.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) insertWalletTransaction(ctx context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error {
	statement := r.db.QueryBuilder.
		Insert("wallet_transactions").
		Columns("wallet_id", "number", "amount", "balance_before", "balance_after",
			"transaction_type", "status", "related_order_id", "related_payment_id", "remark").
		Values(txn.WalletID, txn.Number, txn.Amount, txn.BalanceBefore, txn.BalanceAfter,
			txn.Type, txn.Status, txn.RelatedOrderID, txn.RelatedPaymentID, txn.Remark).
		Suffix("returning id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, sql, args...).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
}

func (r *Repository) readTransactionForUpdate(ctx context.Context, tx pgx.Tx, number string) (*domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(walletTransactionColumns).
		From("wallet_transactions t").
		Where(sq.Eq{"t.number": number}).
		Suffix("for update")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	txn, err := scanWalletTransaction(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return txn, nil
}

func (r *Repository) saveWalletTransaction(ctx context.Context, e execer, txn *domain.WalletTransaction) error {
	statement := r.db.QueryBuilder.
		Update("wallet_transactions").
		Set("balance_before", txn.BalanceBefore).
		Set("balance_after", txn.BalanceAfter).
		Set("status", txn.Status).
		Set("remark", txn.Remark).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": txn.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	wallet := domain.Wallet{}
	err := row.Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Balance,
		&wallet.FrozenAmount,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func scanWalletTransaction(row rowScanner) (*domain.WalletTransaction, error) {
	txn := domain.WalletTransaction{}
	err := row.Scan(
		&txn.ID,
		&txn.WalletID,
		&txn.Number,
		&txn.Amount,
		&txn.BalanceBefore,
		&txn.BalanceAfter,
		&txn.Type,
		&txn.Status,
		&txn.RelatedOrderID,
		&txn.RelatedPaymentID,
		&txn.Remark,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
