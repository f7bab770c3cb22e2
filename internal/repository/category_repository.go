package repository

import (
	"context"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, category_name, slug FROM categories ORDER BY id")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}
