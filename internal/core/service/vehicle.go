package service

import (
	"context"

	"github.com/freightmart/freightmart/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	vehicle.Status = domain.VehicleStatusAvailable

	newVehicle, err := s.repo.CreateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create vehicle", zap.Error(err))
		return nil, err
	}
	return newVehicle, nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleID uint64) (*domain.Vehicle, error) {
	return s.repo.ReadVehicle(ctx, vehicleID)
}

func (s *Service) ListVehiclesByOwner(ctx context.Context, ownerID uint64) ([]*domain.Vehicle, error) {
	return s.repo.ListVehiclesByOwner(ctx, ownerID)
}
