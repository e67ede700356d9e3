package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	shipperID  = uint64(1)
	driverID   = uint64(2)
	strangerID = uint64(99)
)

func goodsFixture() *domain.Goods {
	return &domain.Goods{
		ID:      10,
		OwnerID: shipperID,
		Status:  domain.GoodsStatusPending,
	}
}

func vehicleFixture() *domain.Vehicle {
	return &domain.Vehicle{
		ID:      20,
		OwnerID: driverID,
		Status:  domain.VehicleStatusAvailable,
	}
}

func orderInput(deposit string) port.CreateOrderInput {
	return port.CreateOrderInput{
		GoodsID:              10,
		VehicleID:            20,
		ActorID:              shipperID,
		FreightFee:           decimal.MustParse("1000"),
		Deposit:              decimal.MustParse(deposit),
		OtherFees:            decimal.MustParse("50"),
		ExpectedLoadingTime:  time.Now().Add(24 * time.Hour),
		ExpectedDeliveryTime: time.Now().Add(72 * time.Hour),
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("deposit order starts pending payment", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)
		env.repo.EXPECT().CreateOrderBooking(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order, log *domain.OrderStatusLog) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusPendingPayment, order.Status)
				assert.Equal(t, domain.OrderUnpaid, order.PaymentStatus)
				assert.Equal(t, shipperID, order.ShipperID)
				assert.Equal(t, driverID, order.DriverID)
				assert.Equal(t, decimal.MustParse("1050"), order.TotalAmount)
				assert.NotEmpty(t, order.Number)
				assert.Equal(t, domain.OrderStatusPendingPayment, log.ToStatus)
				assert.Equal(t, shipperID, log.OperatorID)
				order.ID = 100
				return order, nil
			})
		env.notifier.EXPECT().Notify(shipperID, "order_created", gomock.Any())
		env.notifier.EXPECT().Notify(driverID, "order_created", gomock.Any())

		order, err := env.svc.CreateOrder(context.Background(), orderInput("200"))
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingPayment, order.Status)
	})

	t.Run("no deposit starts pending loading", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)
		env.repo.EXPECT().CreateOrderBooking(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order, log *domain.OrderStatusLog) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusPendingLoading, order.Status)
				return order, nil
			})
		env.notifier.EXPECT().Notify(gomock.Any(), "order_created", gomock.Any()).Times(2)

		order, err := env.svc.CreateOrder(context.Background(), orderInput("0"))
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingLoading, order.Status)
	})

	t.Run("actor is not a party", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)

		input := orderInput("0")
		input.ActorID = strangerID
		_, err := env.svc.CreateOrder(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("goods already booked", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		goods := goodsFixture()
		goods.Status = domain.GoodsStatusAccepted
		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goods, nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)

		_, err := env.svc.CreateOrder(context.Background(), orderInput("0"))
		assert.ErrorIs(t, err, domain.ErrGoodsNotAvailable)
	})

	t.Run("vehicle busy", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		vehicle := vehicleFixture()
		vehicle.Status = domain.VehicleStatusInTransit
		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicle, nil)

		_, err := env.svc.CreateOrder(context.Background(), orderInput("0"))
		assert.ErrorIs(t, err, domain.ErrVehicleNotAvailable)
	})

	t.Run("lost race inside booking", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)
		env.repo.EXPECT().CreateOrderBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrGoodsNotAvailable)

		_, err := env.svc.CreateOrder(context.Background(), orderInput("0"))
		assert.ErrorIs(t, err, domain.ErrGoodsNotAvailable)
	})

	t.Run("number conflict retried", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goodsFixture(), nil)
		env.repo.EXPECT().ReadVehicle(gomock.Any(), uint64(20)).Return(vehicleFixture(), nil)
		env.repo.EXPECT().CreateOrderBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData)
		env.repo.EXPECT().CreateOrderBooking(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order, log *domain.OrderStatusLog) (*domain.Order, error) {
				return order, nil
			})
		env.notifier.EXPECT().Notify(gomock.Any(), "order_created", gomock.Any()).Times(2)

		_, err := env.svc.CreateOrder(context.Background(), orderInput("0"))
		assert.NoError(t, err)
	})
}

func mockUpdateOrder(env *testEnv, order *domain.Order) {
	env.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, orderID uint64, fn port.UpdateOrderFn) (*domain.Order, error) {
			if _, err := fn(order); err != nil {
				return nil, err
			}
			return order, nil
		})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{
			ID:        100,
			Number:    "ORD20260101000000ABCDEF",
			ShipperID: shipperID,
			DriverID:  driverID,
			Status:    status,
		}
	}

	t.Run("driver starts transit", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := baseOrder(domain.OrderStatusPendingLoading)
		mockUpdateOrder(env, order)
		env.notifier.EXPECT().Notify(shipperID, "order_status_changed", order.Number)

		result, err := env.svc.UpdateOrderStatus(context.Background(), order.ID, driverID,
			domain.OrderStatusInTransit, "loaded")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusInTransit, result.Status)
		assert.NotNil(t, result.ActualLoadingTime)
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := baseOrder(domain.OrderStatusPendingLoading)
		mockUpdateOrder(env, order)

		_, err := env.svc.UpdateOrderStatus(context.Background(), order.ID, driverID,
			domain.OrderStatusDelivered, "")
		assert.ErrorIs(t, err, domain.ErrOrderTransition)
		assert.Equal(t, domain.OrderStatusPendingLoading, order.Status)
	})

	t.Run("wrong role is rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := baseOrder(domain.OrderStatusPendingLoading)
		mockUpdateOrder(env, order)

		_, err := env.svc.UpdateOrderStatus(context.Background(), order.ID, shipperID,
			domain.OrderStatusInTransit, "")
		assert.ErrorIs(t, err, domain.ErrOrderTransition)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := baseOrder(domain.OrderStatusInTransit)
		mockUpdateOrder(env, order)

		_, err := env.svc.UpdateOrderStatus(context.Background(), order.ID, strangerID,
			domain.OrderStatusDelivered, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("shipper completes delivered order", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := baseOrder(domain.OrderStatusDelivered)
		mockUpdateOrder(env, order)
		env.notifier.EXPECT().Notify(driverID, "order_status_changed", order.Number)

		result, err := env.svc.UpdateOrderStatus(context.Background(), order.ID, shipperID,
			domain.OrderStatusCompleted, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, result.Status)
	})
}

func TestService_ListOrdersByUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	env := newTestEnv(t, mockCtrl)

	// the status filter travels down to the repository untouched
	env.repo.EXPECT().ListOrdersByUser(gomock.Any(), driverID, domain.OrderStatusInTransit).
		Return([]*domain.Order{{ID: 100, DriverID: driverID, Status: domain.OrderStatusInTransit}}, nil)

	list, err := env.svc.ListOrdersByUser(context.Background(), driverID, domain.OrderStatusInTransit)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, domain.OrderStatusInTransit, list[0].Status)
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("cancel before loading", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := &domain.Order{
			ID: 100, Number: "ORDX", ShipperID: shipperID, DriverID: driverID,
			Status: domain.OrderStatusPendingLoading,
		}
		mockUpdateOrder(env, order)
		env.notifier.EXPECT().Notify(driverID, "order_cancelled", order.Number)

		result, err := env.svc.CancelOrder(context.Background(), order.ID, shipperID, "changed plans")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, result.Status)
	})

	t.Run("cancel after loading is rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := &domain.Order{
			ID: 100, ShipperID: shipperID, DriverID: driverID,
			Status: domain.OrderStatusInTransit,
		}
		mockUpdateOrder(env, order)

		_, err := env.svc.CancelOrder(context.Background(), order.ID, shipperID, "")
		assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)
		assert.Equal(t, domain.OrderStatusInTransit, order.Status)
	})
}

func TestService_RateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	completedOrder := func() *domain.Order {
		return &domain.Order{
			ID: 100, Number: "ORDX", ShipperID: shipperID, DriverID: driverID,
			Status: domain.OrderStatusCompleted,
		}
	}

	input := func() port.RateOrderInput {
		return port.RateOrderInput{
			OrderID:  100,
			ActorID:  shipperID,
			ToUserID: driverID,
			Rating:   decimal.MustParse("4"),
			Comment:  "on time",
		}
	}

	t.Run("rating recorded and score refreshed", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(completedOrder(), nil)
		env.repo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, rating *domain.Rating) (decimal.Decimal, error) {
				assert.Equal(t, shipperID, rating.FromUserID)
				assert.Equal(t, driverID, rating.ToUserID)
				return decimal.MustParse("4.5"), nil
			})
		env.notifier.EXPECT().Notify(driverID, "order_rated", "ORDX")

		rating, err := env.svc.RateOrder(context.Background(), input())
		assert.NoError(t, err)
		assert.Equal(t, decimal.MustParse("4"), rating.Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		in := input()
		in.Rating = decimal.MustParse("5.5")
		_, err := env.svc.RateOrder(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrBadRequest)

		in.Rating = decimal.MustParse("0.5")
		_, err = env.svc.RateOrder(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("order not completed", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		order := completedOrder()
		order.Status = domain.OrderStatusDelivered
		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(order, nil)

		_, err := env.svc.RateOrder(context.Background(), input())
		assert.ErrorIs(t, err, domain.ErrOrderNotCompleted)
	})

	t.Run("rated user is not the counterparty", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(completedOrder(), nil)

		in := input()
		in.ToUserID = shipperID
		_, err := env.svc.RateOrder(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrRatingWrongUser)
	})

	t.Run("double rating rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(completedOrder(), nil)
		env.repo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
			Return(decimal.Zero, domain.ErrRatingExists)

		_, err := env.svc.RateOrder(context.Background(), input())
		assert.ErrorIs(t, err, domain.ErrRatingExists)
	})
}
