package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	statement := r.db.QueryBuilder.
		Insert("vehicles").
		Columns("owner_id", "license_plate", "load_capacity", "status").
		Values(vehicle.OwnerID, vehicle.LicensePlate, vehicle.LoadCapacity, vehicle.Status).
		Suffix("returning id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *Repository) ReadVehicle(ctx context.Context, vehicleID uint64) (*domain.Vehicle, error) {
	statement := r.db.QueryBuilder.
		Select("id", "owner_id", "license_plate", "load_capacity", "status", "created_at").
		From("vehicles").
		Where(sq.Eq{"id": vehicleID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	vehicle := domain.Vehicle{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.LicensePlate,
		&vehicle.LoadCapacity,
		&vehicle.Status,
		&vehicle.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &vehicle, nil
}

func (r *Repository) ListVehiclesByOwner(ctx context.Context, ownerID uint64) ([]*domain.Vehicle, error) {
	statement := r.db.QueryBuilder.
		Select("id", "owner_id", "license_plate", "load_capacity", "status", "created_at").
		From("vehicles").
		Where(sq.Eq{"owner_id": ownerID}).
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

	list := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle := domain.Vehicle{}
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.OwnerID,
			&vehicle.LicensePlate,
			&vehicle.LoadCapacity,
			&vehicle.Status,
			&vehicle.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) vehicleStatusCAS(ctx context.Context, e execer, vehicleID uint64, from, to domain.VehicleStatus) error {
	statement := r.db.QueryBuilder.
		Update("vehicles").
		Set("status", to).
		Where(sq.Eq{"id": vehicleID, "status": from})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotAvailable
	}

	return nil
}

func (r *Repository) setVehicleStatus(ctx context.Context, e execer, vehicleID uint64, to domain.VehicleStatus) error {
	statement := r.db.QueryBuilder.
		Update("vehicles").
		Set("status", to).
		Where(sq.Eq{"id": vehicleID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}
