package service

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/cache/redis"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/oauth"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	oauthStateTTL    = 10 * time.Minute
	oauthStatePrefix = "oauth:state:"
	TokenTTL         = 24 * time.Hour
)

type AuthServiceImpl struct {
	provider  IdentityProvider
	states    StateStore
	sellers   SellerService
	jwtSecret string
}

func CreateAuthService(provider IdentityProvider, states StateStore, sellers SellerService, jwtSecret string) AuthService {
	return &AuthServiceImpl{
		provider:  provider,
		states:    states,
		sellers:   sellers,
		jwtSecret: jwtSecret,
	}
}

// BeginGoogleLogin stores a single-use state and returns the consent URL.
func (s *AuthServiceImpl) BeginGoogleLogin(ctx context.Context) (redirectURL string, err error) {
	state := uuid.NewString()

	ok, err := s.states.SetOnce(ctx, oauthStatePrefix+state, "1", oauthStateTTL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "BeginGoogleLogin").Msg("")
		return "", errs.ErrInternalServer
	}

	if !ok {
		return "", errs.ErrConflict
	}

	return s.provider.AuthCodeURL(state), nil
}

// CompleteGoogleLogin consumes the state, resolves the Google account and
// issues a session token for the matching seller.
func (s *AuthServiceImpl) CompleteGoogleLogin(ctx context.Context, state string, code string) (res dto.LoginResponse, err error) {
	if state == "" || code == "" {
		return res, errs.ErrInvalidOAuthState
	}

	if _, err = s.states.Take(ctx, oauthStatePrefix+state); err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return res, errs.ErrInvalidOAuthState
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "CompleteGoogleLogin").Msg("")
		return res, errs.ErrInternalServer
	}

	info, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CompleteGoogleLogin").Msg("")
		if errors.Is(err, oauth.ErrUnavailable) {
			return res, errs.ErrBadGateway
		}
		return res, errs.ErrNotLoggedIn
	}

	if !info.VerifiedEmail {
		log.Ctx(ctx).Warn().Str("component", "CompleteGoogleLogin").Str("email", info.Email).Msg("unverified google email")
		return res, errs.ErrNotLoggedIn
	}

	seller, err := s.sellers.ProvisionSeller(ctx, info.Email, info.Name)
	if err != nil {
		return res, err
	}

	token, err := utils.CreateJWTToken(utils.SellerClaims{
		SellerID:   seller.ID,
		Email:      seller.Email,
		Name:       seller.SellerName,
		ExternalID: seller.ExternalID,
		Role:       seller.Role,
	}, s.jwtSecret, TokenTTL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CompleteGoogleLogin").Msg("")
		return res, errs.ErrInternalServer
	}

	res.Token = token
	res.Seller = dto.NewSellerResponse(seller)

	return res, nil
}
