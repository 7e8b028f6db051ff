// Package objstore implements the object store against Amazon S3.
package objstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repovault/domain"
)

// Typed sentinels for the two anticipated failure kinds. The driver must
// handle these explicitly rather than continuing to cleanup.
var (
	// ErrLocalFileMissing is returned when the file to upload does not exist.
	ErrLocalFileMissing = errors.New("local file not found")

	// ErrCredentialsRejected is returned when the static credentials are
	// refused by the service.
	ErrCredentialsRejected = errors.New("object storage credentials rejected")
)

// credentialErrorCodes are the S3 API error codes classified as credential
// rejection.
var credentialErrorCodes = map[string]bool{
	"InvalidAccessKeyId":    true,
	"SignatureDoesNotMatch": true,
	"AccessDenied":          true,
	"ExpiredToken":          true,
}

// Uploader stores files in an S3 bucket using static access/secret keys.
type Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

var _ domain.ObjectStore = (*Uploader)(nil)

// NewUploader builds an S3-backed object store for the given bucket.
func NewUploader(ctx context.Context, accessKey, secretKey, region, bucket string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Uploader{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// Upload sends the local file to the bucket under key. A missing local file
// yields ErrLocalFileMissing, a credentials failure ErrCredentialsRejected;
// all other failures propagate wrapped.
func (u *Uploader) Upload(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Errorf("The file was not found: %s", localPath)
			return fmt.Errorf("%w: %s", ErrLocalFileMissing, localPath)
		}
		return fmt.Errorf("failed to open %q: %w", localPath, err)
	}
	defer file.Close()

	_, err = u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && credentialErrorCodes[apiErr.ErrorCode()] {
			logger.Errorf("Credentials not available: %v", err)
			return fmt.Errorf("%w: %v", ErrCredentialsRejected, err)
		}
		return fmt.Errorf("failed to upload %q to bucket %q: %w", key, u.bucket, err)
	}

	logger.Infof("Upload successful: s3://%s/%s", u.bucket, key)
	return nil
}
