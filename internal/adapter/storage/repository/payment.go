package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, order_id, number, payer_id, payee_id,
	amount, payment_type, payment_method, status,
	transaction_id, transaction_data, remark, created_at, paid_at`

// CreatePayment inserts the payment together with its first audit log.
func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment,
	log *domain.PaymentLog) (*domain.Payment, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Insert("payments").
			Columns("order_id", "number", "payer_id", "payee_id",
				"amount", "payment_type", "payment_method", "status",
				"transaction_id", "remark").
			Values(payment.OrderID, payment.Number, payment.PayerID, payment.PayeeID,
				payment.Amount, payment.Type, payment.Method, payment.Status,
				payment.TransactionID, payment.Remark).
			Suffix("returning id, created_at")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&payment.ID, &payment.CreatedAt)
		if err != nil {
			return err
		}

		log.PaymentID = payment.ID
		return r.insertPaymentLog(ctx, tx, log)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ReadPayment(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns).
		From("payments").
		Where(sq.Eq{"id": paymentID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns).
		From("payments").
		Where(sq.Or{sq.Eq{"payer_id": userID}, sq.Eq{"payee_id": userID}}).
		OrderBy("created_at desc")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdatePayment locks the payment and its order, runs fn and persists
// whatever fn changed plus the log entries it returned. Nil effects
// mean the callback decided nothing should be written.
func (r *Repository) UpdatePayment(ctx context.Context, paymentID uint64,
	fn port.UpdatePaymentFn) (*domain.Payment, error) {
	var payment *domain.Payment
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		payment, err = r.readPaymentForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		order, err := r.readOrderForUpdate(ctx, tx, payment.OrderID)
		if err != nil {
			return err
		}

		orderStatusBefore := order.Status

		effects, err := fn(payment, order)
		if err != nil {
			return err
		}
		if effects == nil {
			return nil
		}

		if err := r.savePayment(ctx, tx, payment); err != nil {
			return err
		}

		if effects.Log != nil {
			effects.Log.PaymentID = payment.ID
			if err := r.insertPaymentLog(ctx, tx, effects.Log); err != nil {
				return err
			}
		}

		if err := r.saveOrder(ctx, tx, order); err != nil {
			return err
		}

		if effects.OrderLog != nil {
			effects.OrderLog.OrderID = order.ID
			if err := r.insertOrderStatusLog(ctx, tx, effects.OrderLog); err != nil {
				return err
			}
		}

		if order.Status.Terminal() && orderStatusBefore != order.Status {
			if err := r.setGoodsStatus(ctx, tx,
				order.GoodsID, domain.GoodsOutcome(order.Status)); err != nil {
				return err
			}
			return r.setVehicleStatus(ctx, tx, order.VehicleID, domain.VehicleStatusAvailable)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *Repository) readPaymentForUpdate(ctx context.Context, tx pgx.Tx, paymentID uint64) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns).
		From("payments").
		Where(sq.Eq{"id": paymentID}).
		Suffix("for update")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) savePayment(ctx context.Context, e execer, payment *domain.Payment) error {
	statement := r.db.QueryBuilder.
		Update("payments").
		Set("status", payment.Status).
		Set("transaction_id", payment.TransactionID).
		Set("transaction_data", payment.TransactionData).
		Set("remark", payment.Remark).
		Set("paid_at", payment.PaidAt).
		Where(sq.Eq{"id": payment.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) insertPaymentLog(ctx context.Context, e execer, log *domain.PaymentLog) error {
	statement := r.db.QueryBuilder.
		Insert("payment_logs").
		Columns("payment_id", "log_type", "content", "data").
		Values(log.PaymentID, log.Type, log.Content, log.Data)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	payment := domain.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Number,
		&payment.PayerID,
		&payment.PayeeID,
		&payment.Amount,
		&payment.Type,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.TransactionData,
		&payment.Remark,
		&payment.CreatedAt,
		&payment.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
