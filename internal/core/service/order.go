package service

import (
	"context"
	"errors"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var ratingMin = decimal.One
var ratingMax = decimal.MustParse("5")

// CreateOrder books a pending goods posting onto an available vehicle.
// The order insert, the first status log and both reservations commit in
// a single transaction.
func (s *Service) CreateOrder(ctx context.Context, input port.CreateOrderInput) (*domain.Order, error) {
	goods, err := s.repo.ReadGoods(ctx, input.GoodsID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.repo.ReadVehicle(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}

	if input.ActorID != goods.OwnerID && input.ActorID != vehicle.OwnerID {
		return nil, domain.ErrForbidden
	}
	if goods.Status != domain.GoodsStatusPending {
		return nil, domain.ErrGoodsNotAvailable
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.ErrVehicleNotAvailable
	}

	totalAmount, err := input.FreightFee.Add(input.OtherFees)
	if err != nil {
		return nil, domain.ErrBadRequest
	}

	status := domain.OrderStatusPendingLoading
	if input.Deposit.Cmp(decimal.Zero) > 0 {
		status = domain.OrderStatusPendingPayment
	}

	order := &domain.Order{
		GoodsID:              goods.ID,
		VehicleID:            vehicle.ID,
		ShipperID:            goods.OwnerID,
		DriverID:             vehicle.OwnerID,
		FreightFee:           input.FreightFee,
		Deposit:              input.Deposit,
		OtherFees:            input.OtherFees,
		TotalAmount:          totalAmount,
		Status:               status,
		PaymentStatus:        domain.OrderUnpaid,
		ExpectedLoadingTime:  input.ExpectedLoadingTime,
		ExpectedDeliveryTime: input.ExpectedDeliveryTime,
		ShipperNotes:         input.ShipperNotes,
		DriverNotes:          input.DriverNotes,
		CreatedAt:            time.Now(),
	}

	var newOrder *domain.Order
	for i := 0; i < numberRetries; i++ {
		order.Number = utils.BusinessNumber(utils.OrderNumberPrefix, time.Now())
		log := &domain.OrderStatusLog{
			ToStatus:   status,
			OperatorID: input.ActorID,
			Remark:     "order created",
		}
		newOrder, err = s.repo.CreateOrderBooking(ctx, order, log)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
	}
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(newOrder.ShipperID, "order_created", newOrder.Number)
	s.notifier.Notify(newOrder.DriverID, "order_created", newOrder.Number)

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64, actorID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, ok := order.Role(actorID); !ok {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64, status domain.OrderStatus) ([]*domain.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID, status)
}

// UpdateOrderStatus drives one edge of the order state machine. All
// checks run again under the row lock, so concurrent updates against
// the same order serialize on the database.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint64, actorID uint64,
	to domain.OrderStatus, remark string) (*domain.Order, error) {
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) (*domain.OrderStatusLog, error) {
		role, ok := o.Role(actorID)
		if !ok {
			return nil, domain.ErrForbidden
		}
		if !domain.CanTransition(o.Status, to, role) {
			return nil, domain.ErrOrderTransition
		}

		from := o.Status
		o.ApplyTransition(to, time.Now())

		return &domain.OrderStatusLog{
			FromStatus: from,
			ToStatus:   to,
			OperatorID: actorID,
			Remark:     remark,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if other, ok := order.Counterparty(actorID); ok {
		s.notifier.Notify(other, "order_status_changed", order.Number)
	}

	return order, nil
}

// CancelOrder is the dedicated early-exit path: it only applies while
// nothing has been loaded yet, and releases the goods and the vehicle
// through the same transition machinery as UpdateOrderStatus.
func (s *Service) CancelOrder(ctx context.Context, orderID uint64, actorID uint64, remark string) (*domain.Order, error) {
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) (*domain.OrderStatusLog, error) {
		if _, ok := o.Role(actorID); !ok {
			return nil, domain.ErrForbidden
		}
		if o.Status != domain.OrderStatusPendingPayment && o.Status != domain.OrderStatusPendingLoading {
			return nil, domain.ErrOrderNotCancellable
		}

		from := o.Status
		o.ApplyTransition(domain.OrderStatusCancelled, time.Now())

		return &domain.OrderStatusLog{
			FromStatus: from,
			ToStatus:   domain.OrderStatusCancelled,
			OperatorID: actorID,
			Remark:     remark,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if other, ok := order.Counterparty(actorID); ok {
		s.notifier.Notify(other, "order_cancelled", order.Number)
	}

	return order, nil
}

// RateOrder records one party's score of the counterparty and refreshes
// the counterparty's credit score as the mean of all received ratings.
func (s *Service) RateOrder(ctx context.Context, input port.RateOrderInput) (*domain.Rating, error) {
	if input.Rating.Cmp(ratingMin) < 0 || input.Rating.Cmp(ratingMax) > 0 {
		return nil, domain.ErrBadRequest
	}

	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if _, ok := order.Role(input.ActorID); !ok {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusCompleted {
		return nil, domain.ErrOrderNotCompleted
	}
	other, _ := order.Counterparty(input.ActorID)
	if input.ToUserID != other {
		return nil, domain.ErrRatingWrongUser
	}

	rating := &domain.Rating{
		OrderID:    order.ID,
		FromUserID: input.ActorID,
		ToUserID:   input.ToUserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	score, err := s.repo.CreateRating(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Credit score updated",
		zap.Uint64("user", input.ToUserID), zap.String("score", score.String()))
	s.notifier.Notify(input.ToUserID, "order_rated", order.Number)

	return rating, nil
}
