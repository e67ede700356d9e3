package http

import (
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	Handler
	service port.Service
}

func NewVehicleHandler(service port.Service, logger *zap.Logger) (*VehicleHandler, error) {
	return &VehicleHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CreateVehicleRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	LoadCapacity string `json:"load_capacity"`
}

type VehicleResponse struct {
	ID           uint64    `json:"id"`
	OwnerID      uint64    `json:"owner_id"`
	LicensePlate string    `json:"license_plate"`
	LoadCapacity string    `json:"load_capacity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func newVehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           vehicle.ID,
		OwnerID:      vehicle.OwnerID,
		LicensePlate: vehicle.LicensePlate,
		LoadCapacity: vehicle.LoadCapacity.String(),
		Status:       string(vehicle.Status),
		CreatedAt:    vehicle.CreatedAt,
	}
}

func (vh *VehicleHandler) CreateVehicle(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := CreateVehicleRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	capacity, err := optionalAmount(req.LoadCapacity)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	vehicle := &domain.Vehicle{
		OwnerID:      userID,
		LicensePlate: req.LicensePlate,
		LoadCapacity: capacity,
	}

	vehicle, err = vh.service.CreateVehicle(ctx, vehicle)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	vh.handleSuccess(ctx, newVehicleResponse(vehicle))
}

func (vh *VehicleHandler) GetVehicle(ctx *gin.Context) {
	vehicleID, err := paramID(ctx, "id")
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	vehicle, err := vh.service.GetVehicle(ctx, vehicleID)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	vh.handleSuccess(ctx, newVehicleResponse(vehicle))
}

func (vh *VehicleHandler) ListMyVehicles(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := vh.service.ListVehiclesByOwner(ctx, userID)
	if err != nil {
		vh.handleError(ctx, err)
		return
	}

	result := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		result = append(result, newVehicleResponse(v))
	}

	vh.handleSuccess(ctx, result)
}
