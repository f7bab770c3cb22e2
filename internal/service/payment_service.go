package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
)

type PaymentServiceImpl struct {
	repo      repository.PaymentRepository
	publisher EventPublisher
}

func CreatePaymentService(repo repository.PaymentRepository, publisher EventPublisher) PaymentService {
	return &PaymentServiceImpl{
		repo:      repo,
		publisher: publisher,
	}
}

// UpsertPaymentMethod keeps a single payment method per seller. Fields of
// the method type not selected are cleared on every write.
func (s *PaymentServiceImpl) UpsertPaymentMethod(ctx context.Context, caller identity.Identity, req dto.PaymentMethodRequest) (res dto.PaymentMethodResponse, err error) {
	if err = req.Validate(); err != nil {
		return res, err
	}

	if req.UserType != domain.UserTypeSeller || req.UserID != caller.SellerID {
		return res, errs.ErrUnauthorized
	}

	methodType := domain.PaymentMethodType(req.MethodType)
	if !methodType.Valid() {
		return res, errs.ErrClient
	}

	detail := domain.PaymentDetail{
		UserType:         req.UserType,
		UserID:           req.UserID,
		MethodType:       methodType,
		CardHolderName:   optionalString(req.CardHolderName),
		CardNumberLast4:  optionalString(req.CardNumberLast4),
		CardToken:        optionalString(req.CardToken),
		ExpiryMonth:      optionalInt(req.ExpiryMonth),
		ExpiryYear:       optionalInt(req.ExpiryYear),
		MpesaPhoneNumber: optionalString(req.MpesaPhoneNumber),
		MpesaFullName:    optionalString(req.MpesaFullName),
	}

	saved, err := s.repo.UpsertPaymentDetail(ctx, detail.Normalize())
	if err != nil {
		return res, fmt.Errorf("upsert payment method: %w", err)
	}

	publish(ctx, s.publisher, strconv.FormatInt(saved.UserID, 10), dto.EventPaymentMethodUpdated, dto.PaymentMethodEvent{
		UserType:   saved.UserType,
		UserID:     saved.UserID,
		MethodType: string(saved.MethodType),
	})

	return dto.NewPaymentMethodResponse(saved), nil
}

func (s *PaymentServiceImpl) GetPaymentMethod(ctx context.Context, caller identity.Identity) (res *dto.PaymentMethodResponse, err error) {
	detail, err := s.repo.GetPaymentDetail(ctx, domain.UserTypeSeller, caller.SellerID)
	if err != nil {
		return nil, err
	}

	if detail.ID == 0 {
		return nil, nil
	}

	resp := dto.NewPaymentMethodResponse(detail)
	return &resp, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}
