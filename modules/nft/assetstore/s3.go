package assetstore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
)

type S3Config struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`

	// KeyPrefix is prepended to every uploaded object key.
	KeyPrefix string `mapstructure:"key_prefix"`

	// PublicBaseURL overrides the default https://<bucket>.s3.<region>.amazonaws.com
	// base, e.g. for a CloudFront distribution in front of the bucket.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// S3 uploads content to an S3 bucket. Credentials come from the default AWS
// config chain. The bucket (or the distribution in front of it) must serve
// objects publicly for the returned URLs to work.
type S3 struct {
	config   S3Config
	uploader *manager.Uploader
}

var (
	_ datagateway.AssetStore = (*S3)(nil)
	_ datagateway.Activator  = (*S3)(nil)
)

func NewS3(config S3Config) *S3 {
	return &S3{config: config}
}

// Activate loads AWS credentials and builds the uploader. Deferred to first
// use so a configured-but-unused S3 store never touches the AWS config chain.
func (s *S3) Activate(ctx context.Context) error {
	sdkConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "can't load aws user config")
	}
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if s.config.Region != "" {
			o.Region = s.config.Region
		}
	})
	s.uploader = manager.NewUploader(client)
	return nil
}

func (s *S3) UploadAsset(ctx context.Context, data []byte, name string) (string, error) {
	return s.upload(ctx, data, name, "application/octet-stream")
}

func (s *S3) UploadText(ctx context.Context, text string, name string) (string, error) {
	return s.upload(ctx, []byte(text), name, "application/json")
}

func (s *S3) upload(ctx context.Context, data []byte, name, contentType string) (string, error) {
	if s.uploader == nil {
		return "", errors.New("S3 store is not activated")
	}
	key := path.Join(s.config.KeyPrefix, name)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrapf(err, "can't upload %q to bucket %q", key, s.config.Bucket)
	}

	base := s.config.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.config.Bucket, s.config.Region)
	}
	publicURL, err := url.JoinPath(base, key)
	if err != nil {
		return "", errors.Wrap(err, "can't build public url")
	}
	return publicURL, nil
}
