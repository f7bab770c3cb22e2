package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const provisionAttempts = 3

type SellerServiceImpl struct {
	repo      repository.SellerRepository
	publisher EventPublisher
	mailer    WelcomeMailer
}

func CreateSellerService(repo repository.SellerRepository, publisher EventPublisher, mailer WelcomeMailer) SellerService {
	return &SellerServiceImpl{
		repo:      repo,
		publisher: publisher,
		mailer:    mailer,
	}
}

// ProvisionSeller returns the seller registered under email, creating it on
// first sign-in. Concurrent first sign-ins converge on a single row.
func (s *SellerServiceImpl) ProvisionSeller(ctx context.Context, email string, name string) (res domain.Seller, err error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return res, errs.ErrNotLoggedIn
	}

	for attempt := 0; attempt < provisionAttempts; attempt++ {
		res, err = s.repo.GetSellerByEmail(ctx, email)
		if err != nil {
			return domain.Seller{}, fmt.Errorf("provision seller: %w", err)
		}

		if res.ID != 0 {
			return res, nil
		}

		var inserted bool
		res, inserted, err = s.repo.InsertSellerIfAbsent(ctx, domain.Seller{
			ExternalID: ulid.Make().String(),
			SellerName: name,
			Email:      email,
			Role:       domain.RoleSeller,
		})
		if err != nil {
			return domain.Seller{}, fmt.Errorf("provision seller: %w", err)
		}

		if inserted {
			s.onProvisioned(ctx, res)
			return res, nil
		}
	}

	log.Ctx(ctx).Error().Str("component", "ProvisionSeller").Str("email", email).Msg("seller neither found nor inserted")
	return domain.Seller{}, errs.ErrInternalServer
}

func (s *SellerServiceImpl) onProvisioned(ctx context.Context, seller domain.Seller) {
	publish(ctx, s.publisher, seller.ExternalID, dto.EventSellerProvisioned, dto.SellerEvent{
		SellerID:   seller.ID,
		ExternalID: seller.ExternalID,
		Email:      seller.Email,
	})

	if s.mailer == nil {
		return
	}

	if err := s.mailer.SendWelcome(ctx, seller.Email, seller.SellerName); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ProvisionSeller").Msg("welcome email not sent")
	}
}

func (s *SellerServiceImpl) GetSellerProfile(ctx context.Context, caller identity.Identity) (res dto.SellerResponse, err error) {
	seller, err := s.repo.GetSellerByEmail(ctx, caller.Email)
	if err != nil {
		return res, err
	}

	if seller.ID == 0 {
		return res, errs.ErrAccountNotFound
	}

	return dto.NewSellerResponse(seller), nil
}

// UpdateSellerProfile changes only the fields present in req. Updating an
// email with no seller behind it is not an error.
func (s *SellerServiceImpl) UpdateSellerProfile(ctx context.Context, caller identity.Identity, req dto.SellerProfileRequest) (err error) {
	if caller.Email == "" {
		return errs.ErrNotLoggedIn
	}

	rows, err := s.repo.UpdateSellerProfile(ctx, domain.SellerProfileUpdate{
		Email:        caller.Email,
		SellerName:   req.SellerName,
		ContactPhone: req.ContactPhone,
		CompanyName:  req.CompanyName,
		WebsiteURL:   req.WebsiteURL,
		ProfileURL:   req.ProfileURL,
		Address:      req.Address,
		Country:      req.Country,
	})
	if err != nil {
		return fmt.Errorf("update seller profile: %w", err)
	}

	if rows == 0 {
		log.Ctx(ctx).Warn().Str("component", "UpdateSellerProfile").Str("email", caller.Email).Msg("no seller matched")
		return nil
	}

	publish(ctx, s.publisher, caller.ExternalID, dto.EventSellerUpdated, dto.SellerEvent{
		SellerID:   caller.SellerID,
		ExternalID: caller.ExternalID,
		Email:      caller.Email,
	})

	return nil
}
