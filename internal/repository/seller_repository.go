package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const sellerColumns = "id, external_id, seller_name, email, contact_phone, company_name, website_url, profile_url, address, country, role, created_at, updated_at"

type SellerRepositoryImpl struct {
	db *sqlx.DB
}

func CreateSellerRepository(db *sqlx.DB) SellerRepository {
	return &SellerRepositoryImpl{db: db}
}

// GetSellerByEmail returns a zero seller when no row matches.
func (r *SellerRepositoryImpl) GetSellerByEmail(ctx context.Context, email string) (data domain.Seller, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+sellerColumns+" FROM sellers WHERE email = $1", email)
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Seller{}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellerByEmail").Msg("")
		return domain.Seller{}, translateError(err)
	}

	return data, nil
}

// InsertSellerIfAbsent relies on the unique email constraint; when another
// row already holds the email nothing is written and inserted is false.
func (r *SellerRepositoryImpl) InsertSellerIfAbsent(ctx context.Context, data domain.Seller) (res domain.Seller, inserted bool, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO sellers(external_id, seller_name, email, contact_phone, role)
		VALUES (:external_id, :seller_name, :email, :contact_phone, :role)
		ON CONFLICT (email) DO NOTHING
		RETURNING `+sellerColumns)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertSellerIfAbsent").Msg("")
		return res, false, translateError(err)
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &res, data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, false, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertSellerIfAbsent").Msg("")
		return domain.Seller{}, false, translateError(err)
	}

	return res, true, nil
}

func (r *SellerRepositoryImpl) UpdateSellerProfile(ctx context.Context, data domain.SellerProfileUpdate) (rowsAffected int64, err error) {
	result, err := r.db.NamedExecContext(ctx, `UPDATE sellers SET
		seller_name = COALESCE(:seller_name, seller_name),
		contact_phone = COALESCE(:contact_phone, contact_phone),
		company_name = COALESCE(:company_name, company_name),
		website_url = COALESCE(:website_url, website_url),
		profile_url = COALESCE(:profile_url, profile_url),
		address = COALESCE(:address, address),
		country = COALESCE(:country, country),
		updated_at = NOW()
		WHERE email = :email`, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateSellerProfile").Msg("")
		return 0, translateError(err)
	}

	return result.RowsAffected()
}
