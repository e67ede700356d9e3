package http

import (
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type GoodsHandler struct {
	Handler
	service port.Service
}

func NewGoodsHandler(service port.Service, logger *zap.Logger) (*GoodsHandler, error) {
	return &GoodsHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CreateGoodsRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Weight      string `json:"weight" binding:"required"`
	GoodsType   string `json:"goods_type"`

	FromLocation  string `json:"from_location" binding:"required"`
	FromLongitude string `json:"from_longitude"`
	FromLatitude  string `json:"from_latitude"`
	ToLocation    string `json:"to_location" binding:"required"`
	ToLongitude   string `json:"to_longitude"`
	ToLatitude    string `json:"to_latitude"`

	LoadingTime         time.Time `json:"loading_time" binding:"required"`
	ExpectedArrivalTime time.Time `json:"expected_arrival_time" binding:"required"`
	ExpectedPrice       string    `json:"expected_price"`
}

type GoodsResponse struct {
	ID          uint64 `json:"id"`
	OwnerID     uint64 `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Weight      string `json:"weight"`
	GoodsType   string `json:"goods_type"`

	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`

	LoadingTime         time.Time `json:"loading_time"`
	ExpectedArrivalTime time.Time `json:"expected_arrival_time"`
	ExpectedPrice       string    `json:"expected_price"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newGoodsResponse(goods *domain.Goods) GoodsResponse {
	return GoodsResponse{
		ID:                  goods.ID,
		OwnerID:             goods.OwnerID,
		Title:               goods.Title,
		Description:         goods.Description,
		Weight:              goods.Weight.String(),
		GoodsType:           goods.GoodsType,
		FromLocation:        goods.FromLocation,
		ToLocation:          goods.ToLocation,
		LoadingTime:         goods.LoadingTime,
		ExpectedArrivalTime: goods.ExpectedArrivalTime,
		ExpectedPrice:       goods.ExpectedPrice.String(),
		Status:              string(goods.Status),
		CreatedAt:           goods.CreatedAt,
	}
}

func newGoodsResponseList(list []*domain.Goods) []GoodsResponse {
	result := make([]GoodsResponse, 0, len(list))
	for _, g := range list {
		result = append(result, newGoodsResponse(g))
	}
	return result
}

// optionalAmount parses an empty string as zero.
func optionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseAmount(s)
}

func (gh *GoodsHandler) CreateGoods(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := CreateGoodsRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	weight, err := parseAmount(req.Weight)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	price, err := optionalAmount(req.ExpectedPrice)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	fromLon, err := optionalAmount(req.FromLongitude)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}
	fromLat, err := optionalAmount(req.FromLatitude)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}
	toLon, err := optionalAmount(req.ToLongitude)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}
	toLat, err := optionalAmount(req.ToLatitude)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	goods := &domain.Goods{
		OwnerID:             userID,
		Title:               req.Title,
		Description:         req.Description,
		Weight:              weight,
		GoodsType:           req.GoodsType,
		FromLocation:        req.FromLocation,
		FromLongitude:       fromLon,
		FromLatitude:        fromLat,
		ToLocation:          req.ToLocation,
		ToLongitude:         toLon,
		ToLatitude:          toLat,
		LoadingTime:         req.LoadingTime,
		ExpectedArrivalTime: req.ExpectedArrivalTime,
		ExpectedPrice:       price,
	}

	goods, err = gh.service.CreateGoods(ctx, goods)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	gh.handleSuccess(ctx, newGoodsResponse(goods))
}

func (gh *GoodsHandler) GetGoods(ctx *gin.Context) {
	goodsID, err := paramID(ctx, "id")
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	goods, err := gh.service.GetGoods(ctx, goodsID)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	gh.handleSuccess(ctx, newGoodsResponse(goods))
}

func (gh *GoodsHandler) ListOpenGoods(ctx *gin.Context) {
	list, err := gh.service.ListOpenGoods(ctx)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	gh.handleSuccess(ctx, newGoodsResponseList(list))
}

func (gh *GoodsHandler) ListMyGoods(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID
	status := domain.GoodsStatus(ctx.Query("status"))

	list, err := gh.service.ListGoodsByOwner(ctx, userID, status)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	gh.handleSuccess(ctx, newGoodsResponseList(list))
}

func (gh *GoodsHandler) CancelGoods(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	goodsID, err := paramID(ctx, "id")
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	goods, err := gh.service.CancelGoods(ctx, goodsID, userID)
	if err != nil {
		gh.handleError(ctx, err)
		return
	}

	gh.handleSuccess(ctx, newGoodsResponse(goods))
}
