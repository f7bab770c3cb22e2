package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const paymentColumns = `id, user_type, user_id, method_type, card_holder_name, card_number_last4, card_token,
	expiry_month, expiry_year, mpesa_phone_number, mpesa_full_name, created_at, updated_at`

type PaymentRepositoryImpl struct {
	db *sqlx.DB
}

func CreatePaymentRepository(db *sqlx.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

// GetPaymentDetail returns a zero detail when the identity has none.
func (r *PaymentRepositoryImpl) GetPaymentDetail(ctx context.Context, userType string, userID int64) (data domain.PaymentDetail, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+paymentColumns+" FROM payment_details WHERE user_type = $1 AND user_id = $2", userType, userID)
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PaymentDetail{}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPaymentDetail").Msg("")
		return domain.PaymentDetail{}, translateError(err)
	}

	return data, nil
}

// UpsertPaymentDetail writes every column from data, so the fields of the
// method type not in use must already be nil.
func (r *PaymentRepositoryImpl) UpsertPaymentDetail(ctx context.Context, data domain.PaymentDetail) (res domain.PaymentDetail, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO payment_details(user_type, user_id, method_type, card_holder_name, card_number_last4,
			card_token, expiry_month, expiry_year, mpesa_phone_number, mpesa_full_name)
		VALUES (:user_type, :user_id, :method_type, :card_holder_name, :card_number_last4,
			:card_token, :expiry_month, :expiry_year, :mpesa_phone_number, :mpesa_full_name)
		ON CONFLICT (user_type, user_id) DO UPDATE SET
			method_type = EXCLUDED.method_type,
			card_holder_name = EXCLUDED.card_holder_name,
			card_number_last4 = EXCLUDED.card_number_last4,
			card_token = EXCLUDED.card_token,
			expiry_month = EXCLUDED.expiry_month,
			expiry_year = EXCLUDED.expiry_year,
			mpesa_phone_number = EXCLUDED.mpesa_phone_number,
			mpesa_full_name = EXCLUDED.mpesa_full_name,
			updated_at = NOW()
		RETURNING `+paymentColumns)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertPaymentDetail").Msg("")
		return res, translateError(err)
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &res, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertPaymentDetail").Msg("")
		return domain.PaymentDetail{}, translateError(err)
	}

	return res, nil
}
