package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const goodsColumns = `id, owner_id, title, description, weight, goods_type,
	from_location, from_longitude, from_latitude,
	to_location, to_longitude, to_latitude,
	loading_time, expected_arrival_time, expected_price,
	status, created_at, updated_at`

func (r *Repository) CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error) {
	statement := r.db.QueryBuilder.
		Insert("goods").
		Columns("owner_id", "title", "description", "weight", "goods_type",
			"from_location", "from_longitude", "from_latitude",
			"to_location", "to_longitude", "to_latitude",
			"loading_time", "expected_arrival_time", "expected_price", "status").
		Values(goods.OwnerID, goods.Title, goods.Description, goods.Weight, goods.GoodsType,
			goods.FromLocation, goods.FromLongitude, goods.FromLatitude,
			goods.ToLocation, goods.ToLongitude, goods.ToLatitude,
			goods.LoadingTime, goods.ExpectedArrivalTime, goods.ExpectedPrice, goods.Status).
		Suffix("returning id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&goods.ID, &goods.CreatedAt, &goods.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return goods, nil
}

func (r *Repository) ReadGoods(ctx context.Context, goodsID uint64) (*domain.Goods, error) {
	statement := r.db.QueryBuilder.
		Select(goodsColumns).
		From("goods").
		Where(sq.Eq{"id": goodsID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	goods, err := scanGoods(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return goods, nil
}

func (r *Repository) ListGoodsByOwner(ctx context.Context, ownerID uint64, status domain.GoodsStatus) ([]*domain.Goods, error) {
	where := sq.Eq{"owner_id": ownerID}
	if status != "" {
		where["status"] = status
	}
	return r.listGoods(ctx, where)
}

func (r *Repository) ListGoodsByStatus(ctx context.Context, status domain.GoodsStatus) ([]*domain.Goods, error) {
	return r.listGoods(ctx, sq.Eq{"status": status})
}

func (r *Repository) listGoods(ctx context.Context, where sq.Eq) ([]*domain.Goods, error) {
	statement := r.db.QueryBuilder.
		Select(goodsColumns).
		From("goods").
		Where(where).
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

	list := make([]*domain.Goods, 0)
	for rows.Next() {
		goods, err := scanGoods(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, goods)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateGoodsStatus is a compare-and-swap against the current status, so
// two bookings racing for the same posting cannot both win.
func (r *Repository) UpdateGoodsStatus(ctx context.Context, goodsID uint64, from, to domain.GoodsStatus) error {
	return r.goodsStatusCAS(ctx, r.db.Pool, goodsID, from, to)
}

func (r *Repository) goodsStatusCAS(ctx context.Context, e execer, goodsID uint64, from, to domain.GoodsStatus) error {
	statement := r.db.QueryBuilder.
		Update("goods").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": goodsID, "status": from})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoodsNotAvailable
	}

	return nil
}

// setGoodsStatus updates unconditionally; used for terminal order
// cascades where the goods row is already pinned by the order lock.
func (r *Repository) setGoodsStatus(ctx context.Context, e execer, goodsID uint64, to domain.GoodsStatus) error {
	statement := r.db.QueryBuilder.
		Update("goods").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": goodsID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoods(row rowScanner) (*domain.Goods, error) {
	goods := domain.Goods{}
	err := row.Scan(
		&goods.ID,
		&goods.OwnerID,
		&goods.Title,
		&goods.Description,
		&goods.Weight,
		&goods.GoodsType,
		&goods.FromLocation,
		&goods.FromLongitude,
		&goods.FromLatitude,
		&goods.ToLocation,
		&goods.ToLongitude,
		&goods.ToLatitude,
		&goods.LoadingTime,
		&goods.ExpectedArrivalTime,
		&goods.ExpectedPrice,
		&goods.Status,
		&goods.CreatedAt,
		&goods.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goods, nil
}
