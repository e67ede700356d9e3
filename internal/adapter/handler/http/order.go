package http

import (
	"net/http"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CreateOrderRequest struct {
	GoodsID   uint64 `json:"goods_id" binding:"required"`
	VehicleID uint64 `json:"vehicle_id" binding:"required"`

	FreightFee string `json:"freight_fee" binding:"required"`
	Deposit    string `json:"deposit"`
	OtherFees  string `json:"other_fees"`

	ExpectedLoadingTime  time.Time `json:"expected_loading_time" binding:"required"`
	ExpectedDeliveryTime time.Time `json:"expected_delivery_time" binding:"required"`

	ShipperNotes string `json:"shipper_notes"`
	DriverNotes  string `json:"driver_notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Remark string `json:"remark"`
}

type CancelOrderRequest struct {
	Remark string `json:"remark"`
}

type RateOrderRequest struct {
	ToUserID uint64 `json:"to_user_id" binding:"required"`
	Rating   string `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

type OrderResponse struct {
	ID        uint64 `json:"id"`
	Number    string `json:"number"`
	GoodsID   uint64 `json:"goods_id"`
	VehicleID uint64 `json:"vehicle_id"`
	ShipperID uint64 `json:"shipper_id"`
	DriverID  uint64 `json:"driver_id"`

	FreightFee  string `json:"freight_fee"`
	Deposit     string `json:"deposit"`
	OtherFees   string `json:"other_fees"`
	TotalAmount string `json:"total_amount"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	ExpectedLoadingTime  time.Time  `json:"expected_loading_time"`
	ActualLoadingTime    *time.Time `json:"actual_loading_time,omitempty"`
	ExpectedDeliveryTime time.Time  `json:"expected_delivery_time"`
	ActualDeliveryTime   *time.Time `json:"actual_delivery_time,omitempty"`

	ShipperNotes string    `json:"shipper_notes"`
	DriverNotes  string    `json:"driver_notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                   order.ID,
		Number:               order.Number,
		GoodsID:              order.GoodsID,
		VehicleID:            order.VehicleID,
		ShipperID:            order.ShipperID,
		DriverID:             order.DriverID,
		FreightFee:           order.FreightFee.String(),
		Deposit:              order.Deposit.String(),
		OtherFees:            order.OtherFees.String(),
		TotalAmount:          order.TotalAmount.String(),
		Status:               string(order.Status),
		PaymentStatus:        string(order.PaymentStatus),
		ExpectedLoadingTime:  order.ExpectedLoadingTime,
		ActualLoadingTime:    order.ActualLoadingTime,
		ExpectedDeliveryTime: order.ExpectedDeliveryTime,
		ActualDeliveryTime:   order.ActualDeliveryTime,
		ShipperNotes:         order.ShipperNotes,
		DriverNotes:          order.DriverNotes,
		CreatedAt:            order.CreatedAt,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := CreateOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	freightFee, err := parseAmount(req.FreightFee)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	deposit, err := optionalAmount(req.Deposit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	otherFees, err := optionalAmount(req.OtherFees)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.CreateOrder(ctx, port.CreateOrderInput{
		GoodsID:              req.GoodsID,
		VehicleID:            req.VehicleID,
		ActorID:              userID,
		FreightFee:           freightFee,
		Deposit:              deposit,
		OtherFees:            otherFees,
		ExpectedLoadingTime:  req.ExpectedLoadingTime,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
		ShipperNotes:         req.ShipperNotes,
		DriverNotes:          req.DriverNotes,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := paramID(ctx, "id")
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID
	status := domain.OrderStatus(ctx.Query("status"))

	list, err := oh.service.ListOrdersByUser(ctx, userID, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := paramID(ctx, "id")
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := UpdateOrderStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, userID,
		domain.OrderStatus(req.Status), req.Remark)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := paramID(ctx, "id")
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := CancelOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, orderID, userID, req.Remark)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) RateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := paramID(ctx, "id")
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := RateOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	rating, err := parseAmount(req.Rating)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result, err := oh.service.RateOrder(ctx, port.RateOrderInput{
		OrderID:  orderID,
		ActorID:  userID,
		ToUserID: req.ToUserID,
		Rating:   rating,
		Comment:  req.Comment,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, struct {
		ID        uint64    `json:"id"`
		OrderID   uint64    `json:"order_id"`
		ToUserID  uint64    `json:"to_user_id"`
		Rating    string    `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}{
		ID:        result.ID,
		OrderID:   result.OrderID,
		ToUserID:  result.ToUserID,
		Rating:    result.Rating.String(),
		Comment:   result.Comment,
		CreatedAt: result.CreatedAt,
	}, http.StatusCreated)
}
