package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const productColumns = "id, name, description, category_id, seller_id, status, price, stock, available_at, created_at, updated_at, slug"

type ProductRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *ProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error {
	return r.runTrx(ctx, &sql.TxOptions{}, fn)
}

func (r *ProductRepositoryImpl) HandleSnapshot(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error {
	return r.runTrx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (r *ProductRepositoryImpl) runTrx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, repo ProductRepository) error) (err error) {
	if r.tx != nil {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return translateError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
				err = translateError(err)
			}
		}
	}()

	txRepo := &ProductRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, txRepo)

	return err
}

func productWhere(sellerID int64, filter ProductFilter) (string, map[string]interface{}) {
	clauses := []string{"seller_id = :seller_id"}
	args := map[string]interface{}{"seller_id": sellerID}

	if q := strings.TrimSpace(filter.Q); q != "" {
		clauses = append(clauses, "name ILIKE :q")
		args["q"] = "%" + escapeLike(q) + "%"
	}

	if filter.Status != "" {
		clauses = append(clauses, "status = :status")
		args["status"] = filter.Status
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, sellerID int64, filter ProductFilter) (data []domain.Product, err error) {
	where, args := productWhere(sellerID, filter)
	query := "SELECT " + productColumns + " FROM products" + where + " ORDER BY id"

	if filter.Limit > 0 {
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = filter.Offset
	}

	nstmt, err := r.conn().PrepareNamedContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, translateError(err)
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, sellerID int64, filter ProductFilter) (count int64, err error) {
	where, args := productWhere(sellerID, filter)

	nstmt, err := r.conn().PrepareNamedContext(ctx, "SELECT COUNT(id) FROM products"+where)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, translateError(err)
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, translateError(err)
	}

	return count, nil
}

func (r *ProductRepositoryImpl) GetImagesByProductIDs(ctx context.Context, productIDs []int64) (data []domain.ProductImage, err error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	err = r.conn().SelectContext(ctx, &data,
		"SELECT id, product_id, image_url FROM product_images WHERE product_id = ANY($1) ORDER BY id",
		pq.Array(productIDs))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetImagesByProductIDs").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

// GetProductByID returns a zero product when id does not exist.
func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	return r.getProduct(ctx, "GetProductByID", "SELECT "+productColumns+" FROM products WHERE id = $1", id)
}

// LockProductByID is GetProductByID holding a row lock until the surrounding
// transaction ends.
func (r *ProductRepositoryImpl) LockProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	if r.tx == nil {
		return data, fmt.Errorf("LockProductByID requires a transaction")
	}
	return r.getProduct(ctx, "LockProductByID", "SELECT "+productColumns+" FROM products WHERE id = $1 FOR UPDATE", id)
}

func (r *ProductRepositoryImpl) getProduct(ctx context.Context, component string, query string, id int64) (data domain.Product, err error) {
	row := r.conn().QueryRowxContext(ctx, query, id)
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return domain.Product{}, translateError(err)
	}

	return data, nil
}

// InsertProduct reports inserted=false when the slug is already taken.
func (r *ProductRepositoryImpl) InsertProduct(ctx context.Context, data domain.Product) (id int64, inserted bool, err error) {
	nstmt, err := r.conn().PrepareNamedContext(ctx, `INSERT INTO products(name, description, category_id, seller_id, status, price, stock, available_at, slug)
		VALUES (:name, :description, :category_id, :seller_id, :status, :price, :stock, :available_at, :slug)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertProduct").Msg("")
		return 0, false, translateError(err)
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertProduct").Msg("")
		return 0, false, translateError(err)
	}

	return id, true, nil
}

func (r *ProductRepositoryImpl) AddProductImages(ctx context.Context, data []domain.ProductImage) (err error) {
	if len(data) == 0 {
		return nil
	}

	_, err = r.conn().NamedExecContext(ctx, "INSERT INTO product_images(product_id, image_url) VALUES (:product_id, :image_url)", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProductImages").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProductImages(ctx context.Context, productID int64) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM product_images WHERE product_id = $1", productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProductImages").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.conn().NamedExecContext(ctx, `UPDATE products SET name = :name, description = :description, price = :price, stock = :stock,
		category_id = :category_id, status = :status, available_at = :available_at, updated_at = NOW()
		WHERE id = :id`, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return translateError(err)
	}

	return nil
}
