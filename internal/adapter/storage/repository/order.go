package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, number, goods_id, vehicle_id, shipper_id, driver_id,
	freight_fee, deposit, other_fees, total_amount,
	status, payment_status,
	expected_loading_time, actual_loading_time,
	expected_delivery_time, actual_delivery_time,
	shipper_notes, driver_notes, created_at, updated_at`

// CreateOrderBooking inserts the order with its first status log and
// reserves the goods and the vehicle, all in one transaction. The CAS
// updates on goods/vehicle status serialize concurrent bookings.
func (r *Repository) CreateOrderBooking(ctx context.Context, order *domain.Order,
	log *domain.OrderStatusLog) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Insert("orders").
			Columns("number", "goods_id", "vehicle_id", "shipper_id", "driver_id",
				"freight_fee", "deposit", "other_fees", "total_amount",
				"status", "payment_status",
				"expected_loading_time", "expected_delivery_time",
				"shipper_notes", "driver_notes").
			Values(order.Number, order.GoodsID, order.VehicleID, order.ShipperID, order.DriverID,
				order.FreightFee, order.Deposit, order.OtherFees, order.TotalAmount,
				order.Status, order.PaymentStatus,
				order.ExpectedLoadingTime, order.ExpectedDeliveryTime,
				order.ShipperNotes, order.DriverNotes).
			Suffix("returning id, created_at, updated_at")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		log.OrderID = order.ID
		if err := r.insertOrderStatusLog(ctx, tx, log); err != nil {
			return err
		}

		if err := r.goodsStatusCAS(ctx, tx,
			order.GoodsID, domain.GoodsStatusPending, domain.GoodsStatusAccepted); err != nil {
			return err
		}

		return r.vehicleStatusCAS(ctx, tx,
			order.VehicleID, domain.VehicleStatusAvailable, domain.VehicleStatusInTransit)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Or{sq.Eq{"shipper_id": userID}, sq.Eq{"driver_id": userID}}).
		OrderBy("created_at desc")
	if status != "" {
		statement = statement.Where(sq.Eq{"status": status})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateOrder runs fn on the row-locked order, persists the result,
// appends the returned status log and, when the order lands in a
// terminal status, releases the goods and the vehicle.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uint64,
	fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}

		before := order.Status

		log, err := fn(order)
		if err != nil {
			return err
		}
		if log == nil {
			return nil
		}

		if err := r.saveOrder(ctx, tx, order); err != nil {
			return err
		}

		log.OrderID = order.ID
		if err := r.insertOrderStatusLog(ctx, tx, log); err != nil {
			return err
		}

		if order.Status.Terminal() && before != order.Status {
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

	return order, nil
}

// CreateRating inserts the rating and refreshes the rated user's credit
// score from all ratings they ever received, in one transaction.
func (r *Repository) CreateRating(ctx context.Context, rating *domain.Rating) (decimal.Decimal, error) {
	var score decimal.Decimal
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Insert("ratings").
			Columns("order_id", "from_user_id", "to_user_id", "rating", "comment").
			Values(rating.OrderID, rating.FromUserID, rating.ToUserID, rating.Rating, rating.Comment).
			Suffix("returning id, created_at")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&rating.ID, &rating.CreatedAt)
		if err != nil {
			return err
		}

		avgSt := r.db.QueryBuilder.
			Select("avg(rating)").
			From("ratings").
			Where(sq.Eq{"to_user_id": rating.ToUserID})

		sql, args, err = avgSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&score)
		if err != nil {
			return err
		}

		scoreSt := r.db.QueryBuilder.
			Update("users").
			Set("credit_score", score).
			Where(sq.Eq{"id": rating.ToUserID})

		sql, args, err = scoreSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return decimal.Zero, domain.ErrRatingExists
		}
		return decimal.Zero, err
	}

	return score, nil
}

func (r *Repository) readOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("for update")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) saveOrder(ctx context.Context, e execer, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("freight_fee", order.FreightFee).
		Set("other_fees", order.OtherFees).
		Set("total_amount", order.TotalAmount).
		Set("status", order.Status).
		Set("payment_status", order.PaymentStatus).
		Set("actual_loading_time", order.ActualLoadingTime).
		Set("actual_delivery_time", order.ActualDeliveryTime).
		Set("shipper_notes", order.ShipperNotes).
		Set("driver_notes", order.DriverNotes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) insertOrderStatusLog(ctx context.Context, e execer, log *domain.OrderStatusLog) error {
	var operator any
	if log.OperatorID != 0 {
		operator = log.OperatorID
	}

	statement := r.db.QueryBuilder.
		Insert("order_status_logs").
		Columns("order_id", "from_status", "to_status", "operator_id", "remark").
		Values(log.OrderID, log.FromStatus, log.ToStatus, operator, log.Remark)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.GoodsID,
		&order.VehicleID,
		&order.ShipperID,
		&order.DriverID,
		&order.FreightFee,
		&order.Deposit,
		&order.OtherFees,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentStatus,
		&order.ExpectedLoadingTime,
		&order.ActualLoadingTime,
		&order.ExpectedDeliveryTime,
		&order.ActualDeliveryTime,
		&order.ShipperNotes,
		&order.DriverNotes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
