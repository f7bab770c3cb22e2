package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/storage"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProductImage(t *testing.T) {
	uploader := &fakeUploader{}
	svc := CreateUploadService(uploader, 1024)

	res, err := svc.UploadProductImage(context.Background(), identity.Identity{SellerID: 7}, "Blue Shirt.PNG", "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Regexp(t, `^products/7/[0-9a-z]{26}-blue-shirt\.png$`, res.Path)
	assert.Equal(t, "https://storage.example.com/bucket/"+res.Path, res.URL)
	assert.Equal(t, []byte("data"), uploader.body)
}

func TestUploadProductImage_SameNameNeverCollides(t *testing.T) {
	uploader := &fakeUploader{}
	svc := CreateUploadService(uploader, 1024)
	ctx := context.Background()

	first, err := svc.UploadProductImage(ctx, identity.Identity{SellerID: 7}, "photo.jpg", "image/jpeg", 4, strings.NewReader("aaaa"))
	require.NoError(t, err)
	second, err := svc.UploadProductImage(ctx, identity.Identity{SellerID: 8}, "photo.jpg", "image/jpeg", 4, strings.NewReader("bbbb"))
	require.NoError(t, err)
	again, err := svc.UploadProductImage(ctx, identity.Identity{SellerID: 7}, "photo.jpg", "image/jpeg", 4, strings.NewReader("cccc"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.Path, "products/7/"))
	assert.True(t, strings.HasPrefix(second.Path, "products/8/"))
	assert.NotEqual(t, first.Path, again.Path)
}

func TestUploadProfileImage(t *testing.T) {
	uploader := &fakeUploader{}
	svc := CreateUploadService(uploader, 1024).(*UploadServiceImpl)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	res, err := svc.UploadProfileImage(context.Background(), identity.Identity{SellerID: 7}, "me.jpg", "image/jpeg", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "profiles/7-1700000000000-me.jpg", res.Path)
}

func TestUpload_Rejections(t *testing.T) {
	type TestCase struct {
		Name        string
		Filename    string
		Size        int64
		UploadErr   error
		ExpectedErr error
	}

	testCases := []TestCase{
		{Name: "Not an image", Filename: "notes.txt", Size: 4, ExpectedErr: errs.ErrNotAnImage},
		{Name: "No extension", Filename: "image", Size: 4, ExpectedErr: errs.ErrNotAnImage},
		{Name: "Too large", Filename: "big.png", Size: 2048, ExpectedErr: errs.ErrFileSizeExceedLimit},
		{Name: "Storage down", Filename: "ok.png", Size: 4, UploadErr: storage.ErrUnavailable, ExpectedErr: errs.ErrBadGateway},
		{Name: "Storage error", Filename: "ok.png", Size: 4, UploadErr: errBoom, ExpectedErr: errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			uploader := &fakeUploader{err: tc.UploadErr}
			svc := CreateUploadService(uploader, 1024)

			_, err := svc.UploadProductImage(context.Background(), identity.Identity{SellerID: 7}, tc.Filename, "image/png", tc.Size, strings.NewReader("data"))
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Empty(t, uploader.paths)
		})
	}
}
