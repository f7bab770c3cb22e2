package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/storage"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type UploadServiceImpl struct {
	uploader Uploader
	maxBytes int64
	now      func() time.Time
}

func CreateUploadService(uploader Uploader, maxBytes int64) UploadService {
	return &UploadServiceImpl{
		uploader: uploader,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *UploadServiceImpl) UploadProductImage(ctx context.Context, caller identity.Identity, filename string, contentType string, size int64, r io.Reader) (res dto.UploadResponse, err error) {
	name, err := s.checkImage(filename, size)
	if err != nil {
		return res, err
	}

	objectPath := fmt.Sprintf("products/%d/%s-%s", caller.SellerID, strings.ToLower(ulid.Make().String()), name)
	return s.upload(ctx, objectPath, contentType, r)
}

func (s *UploadServiceImpl) UploadProfileImage(ctx context.Context, caller identity.Identity, filename string, contentType string, size int64, r io.Reader) (res dto.UploadResponse, err error) {
	name, err := s.checkImage(filename, size)
	if err != nil {
		return res, err
	}

	objectPath := fmt.Sprintf("profiles/%d-%d-%s", caller.SellerID, s.now().UnixMilli(), name)
	return s.upload(ctx, objectPath, contentType, r)
}

// checkImage returns a storage-safe version of filename.
func (s *UploadServiceImpl) checkImage(filename string, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExtensions[ext] {
		return "", errs.ErrNotAnImage
	}

	if s.maxBytes > 0 && size > s.maxBytes {
		return "", errs.ErrFileSizeExceedLimit
	}

	base := slug.Make(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if base == "" {
		base = "image"
	}

	return base + ext, nil
}

func (s *UploadServiceImpl) upload(ctx context.Context, objectPath string, contentType string, r io.Reader) (res dto.UploadResponse, err error) {
	if s.uploader == nil {
		return res, errs.ErrBadGateway
	}

	url, err := s.uploader.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Str("path", objectPath).Msg("")
		if errors.Is(err, storage.ErrUnavailable) {
			return res, errs.ErrBadGateway
		}
		return res, errs.ErrInternalServer
	}

	return dto.UploadResponse{URL: url, Path: objectPath}, nil
}
