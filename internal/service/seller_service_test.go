package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionSeller(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSellerRepo()
	publisher := &fakePublisher{}
	mailer := &fakeMailer{}
	svc := CreateSellerService(repo, publisher, mailer)

	created, err := svc.ProvisionSeller(ctx, "new@example.com", "New Seller")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "New Seller", created.SellerName)
	assert.Equal(t, domain.RoleSeller, created.Role)
	assert.Len(t, created.ExternalID, 26)

	again, err := svc.ProvisionSeller(ctx, "new@example.com", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, created.ExternalID, again.ExternalID)
	assert.Equal(t, "New Seller", again.SellerName)

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, []string{"new@example.com"}, mailer.sent)
	assert.Equal(t, []string{dto.EventSellerProvisioned}, publisher.types())
}

func TestProvisionSeller_EmptyEmail(t *testing.T) {
	repo := newFakeSellerRepo()
	svc := CreateSellerService(repo, nil, nil)

	_, err := svc.ProvisionSeller(context.Background(), "  ", "Nobody")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
	assert.Zero(t, repo.inserts)
}

func TestProvisionSeller_LosesInsertRace(t *testing.T) {
	repo := newFakeSellerRepo()
	repo.sellers["race@example.com"] = domain.Seller{ID: 41, Email: "race@example.com", ExternalID: "existing"}
	repo.hideOnce = true
	svc := CreateSellerService(repo, nil, nil)

	res, err := svc.ProvisionSeller(context.Background(), "race@example.com", "Racer")
	require.NoError(t, err)
	assert.Equal(t, int64(41), res.ID)
	assert.Equal(t, "existing", res.ExternalID)
	assert.Zero(t, repo.inserts)
}

func TestProvisionSeller_Concurrent(t *testing.T) {
	repo := newFakeSellerRepo()
	svc := CreateSellerService(repo, nil, &fakeMailer{})

	var wg sync.WaitGroup
	ids := make([]int64, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.ProvisionSeller(context.Background(), "same@example.com", "Same")
			assert.NoError(t, err)
			ids[i] = res.ID
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.inserts)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestProvisionSeller_MailFailureIsNotFatal(t *testing.T) {
	svc := CreateSellerService(newFakeSellerRepo(), nil, &fakeMailer{err: errBoom})

	res, err := svc.ProvisionSeller(context.Background(), "mail@example.com", "Mail")
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
}

func TestUpdateSellerProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSellerRepo()
	publisher := &fakePublisher{}
	svc := CreateSellerService(repo, publisher, nil)

	seller, err := svc.ProvisionSeller(ctx, "shop@example.com", "Shop")
	require.NoError(t, err)
	caller := identity.Identity{SellerID: seller.ID, Email: seller.Email, ExternalID: seller.ExternalID}

	company := "Shop Ltd"
	require.NoError(t, svc.UpdateSellerProfile(ctx, caller, dto.SellerProfileRequest{CompanyName: &company}))

	profile, err := svc.GetSellerProfile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "Shop", profile.SellerName)
	require.NotNil(t, profile.CompanyName)
	assert.Equal(t, "Shop Ltd", *profile.CompanyName)
	assert.Nil(t, profile.Country)

	name := "Shop Two"
	require.NoError(t, svc.UpdateSellerProfile(ctx, caller, dto.SellerProfileRequest{SellerName: &name}))
	profile, err = svc.GetSellerProfile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "Shop Two", profile.SellerName)
	assert.Equal(t, "Shop Ltd", *profile.CompanyName)

	assert.Equal(t, []string{dto.EventSellerProvisioned, dto.EventSellerUpdated, dto.EventSellerUpdated}, publisher.types())
}

func TestUpdateSellerProfile_UnknownEmail(t *testing.T) {
	publisher := &fakePublisher{}
	svc := CreateSellerService(newFakeSellerRepo(), publisher, nil)
	name := "Ghost"

	err := svc.UpdateSellerProfile(context.Background(), identity.Identity{SellerID: 3, Email: "ghost@example.com"}, dto.SellerProfileRequest{SellerName: &name})
	assert.NoError(t, err)
	assert.Empty(t, publisher.types())

	_, err = svc.GetSellerProfile(context.Background(), identity.Identity{SellerID: 3, Email: "ghost@example.com"})
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}
