package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const orderColumns = `o.id, COALESCE(o.customer_id, 0) AS customer_id, COALESCE(c.full_name, '') AS customer_name,
	COALESCE(o.order_date, to_timestamp(0)) AS order_date, COALESCE(o.order_status, '') AS order_status, o.total_amount`

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// GetOrdersBySeller lists the most recent orders holding at least one of the
// seller's products.
func (r *OrderRepositoryImpl) GetOrdersBySeller(ctx context.Context, sellerID int64, limit int) (data []domain.Order, err error) {
	err = r.db.SelectContext(ctx, &data, `SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE EXISTS (
			SELECT 1 FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			WHERE oi.order_id = o.id AND p.seller_id = $1
		)
		ORDER BY o.order_date DESC NULLS LAST, o.id DESC
		LIMIT $2`, sellerID, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersBySeller").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error) {
	row := r.db.QueryRowxContext(ctx, `SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`, id)
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return domain.Order{}, translateError(err)
	}

	return data, nil
}

func (r *OrderRepositoryImpl) GetOrderItemsForSeller(ctx context.Context, orderID int64, sellerID int64) (data []domain.OrderItem, err error) {
	err = r.db.SelectContext(ctx, &data, `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1 AND p.seller_id = $2
		ORDER BY oi.id`, orderID, sellerID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderItemsForSeller").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}
