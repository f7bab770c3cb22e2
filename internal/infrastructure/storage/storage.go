package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/alimikegami/seller-dashboard/config"
	circuitbreaker "github.com/alimikegami/seller-dashboard/internal/infrastructure/circuit-breaker"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

var ErrUnavailable = errors.New("object storage unavailable")

// BucketUploader writes objects to a Google Cloud Storage bucket and returns
// their public URL.
type BucketUploader struct {
	bucket  string
	objects *gcs.ObjectsService
	cb      *gobreaker.CircuitBreaker[string]
}

func CreateBucketUploader(ctx context.Context, conf config.StorageConfig) (*BucketUploader, error) {
	var opts []option.ClientOption
	if conf.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.CredentialsFile))
	}

	svc, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &BucketUploader{
		bucket:  conf.Bucket,
		objects: svc.Objects,
		cb:      circuitbreaker.CreateCircuitBreaker[string]("object-storage"),
	}, nil
}

func (u *BucketUploader) Upload(ctx context.Context, objectPath string, contentType string, r io.Reader) (string, error) {
	link, err := u.cb.Execute(func() (string, error) {
		obj, err := u.objects.Insert(u.bucket, &gcs.Object{
			Name:        objectPath,
			ContentType: contentType,
		}).Media(r).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("insert object %s: %w", objectPath, err)
		}

		return PublicURL(u.bucket, obj.Name), nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrUnavailable
	}

	return link, err
}

func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, (&url.URL{Path: objectPath}).EscapedPath())
}
