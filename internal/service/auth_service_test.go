package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/alimikegami/seller-dashboard/internal/infrastructure/oauth"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func beginState(t *testing.T, svc AuthService) string {
	redirect, err := svc.BeginGoogleLogin(context.Background())
	require.NoError(t, err)

	u, err := url.Parse(redirect)
	require.NoError(t, err)

	state := u.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestCompleteGoogleLogin(t *testing.T) {
	ctx := context.Background()
	states := newFakeCache()
	sellers := CreateSellerService(newFakeSellerRepo(), nil, nil)
	provider := &fakeProvider{info: oauth.UserInfo{Email: "jane@example.com", VerifiedEmail: true, Name: "Jane"}}
	svc := CreateAuthService(provider, states, sellers, testSecret)

	state := beginState(t, svc)

	res, err := svc.CompleteGoogleLogin(ctx, state, "code")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.Seller.Email)
	assert.Equal(t, "Jane", res.Seller.SellerName)

	claims, err := utils.ParseJWTToken(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, res.Seller.ID, claims.SellerID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, res.Seller.ExternalID, claims.ExternalID)

	_, err = svc.CompleteGoogleLogin(ctx, state, "code")
	assert.ErrorIs(t, err, errs.ErrInvalidOAuthState)
}

func TestCompleteGoogleLogin_Failures(t *testing.T) {
	type TestCase struct {
		Name        string
		Provider    *fakeProvider
		UseState    bool
		ExpectedErr error
	}

	testCases := []TestCase{
		{
			Name:        "Unknown state",
			Provider:    &fakeProvider{info: oauth.UserInfo{Email: "jane@example.com", VerifiedEmail: true}},
			ExpectedErr: errs.ErrInvalidOAuthState,
		},
		{
			Name:        "Provider unavailable",
			Provider:    &fakeProvider{err: oauth.ErrUnavailable},
			UseState:    true,
			ExpectedErr: errs.ErrBadGateway,
		},
		{
			Name:        "Rejected code",
			Provider:    &fakeProvider{err: errBoom},
			UseState:    true,
			ExpectedErr: errs.ErrNotLoggedIn,
		},
		{
			Name:        "Unverified email",
			Provider:    &fakeProvider{info: oauth.UserInfo{Email: "jane@example.com", VerifiedEmail: false, Name: "Jane"}},
			UseState:    true,
			ExpectedErr: errs.ErrNotLoggedIn,
		},
		{
			Name:        "Account without email",
			Provider:    &fakeProvider{info: oauth.UserInfo{VerifiedEmail: true, Name: "No Mail"}},
			UseState:    true,
			ExpectedErr: errs.ErrNotLoggedIn,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			repo := newFakeSellerRepo()
			svc := CreateAuthService(tc.Provider, newFakeCache(), CreateSellerService(repo, nil, nil), testSecret)

			state := "forged"
			if tc.UseState {
				state = beginState(t, svc)
			}

			_, err := svc.CompleteGoogleLogin(context.Background(), state, "code")
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Zero(t, repo.inserts)
		})
	}
}

func TestCompleteGoogleLogin_MissingParams(t *testing.T) {
	svc := CreateAuthService(&fakeProvider{}, newFakeCache(), nil, testSecret)

	_, err := svc.CompleteGoogleLogin(context.Background(), "", "code")
	assert.ErrorIs(t, err, errs.ErrInvalidOAuthState)
}

func TestCompleteGoogleLogin_RejectedCodeHidesProviderDetail(t *testing.T) {
	provider := &fakeProvider{err: errors.New(`oauth2: "invalid_grant" "Malformed auth code."`)}
	svc := CreateAuthService(provider, newFakeCache(), CreateSellerService(newFakeSellerRepo(), nil, nil), testSecret)

	_, err := svc.CompleteGoogleLogin(context.Background(), beginState(t, svc), "code")
	require.Error(t, err)
	assert.Equal(t, errs.ErrNotLoggedIn.Error(), err.Error())
}
