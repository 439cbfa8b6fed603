package cloud

import (
	"context"
	stderrors "errors"

	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	pkgerrors "github.com/pkg/errors"
)

// S3API is the subset of the s3 client the wrapper touches.
type S3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

type S3 struct {
	client S3API

	region string
}

// NewS3 wraps an already-built client.
func NewS3(client S3API, region string) *S3 {
	return &S3{client: client, region: region}
}

func NewS3Client(ctx context.Context, profile, region string) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(profile),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}

	return &S3{
		client: s3.NewFromConfig(cfg),
		region: region,
	}, nil
}

// BucketExists reports whether the bucket exists and is reachable
// under the configured profile.
func (s *S3) BucketExists(ctx context.Context, bucket string) (bool, error) {
	log.Infof("checking if %q bucket exists", bucket)

	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return true, nil
	}

	var nf *types.NotFound
	if stderrors.As(err, &nf) {
		return false, nil
	}
	var ae smithy.APIError
	if stderrors.As(err, &ae) && (ae.ErrorCode() == "NotFound" || ae.ErrorCode() == "NoSuchBucket") {
		return false, nil
	}
	return false, pkgerrors.Wrapf(err, "head bucket %q", bucket)
}

// CreateBucket creates the backup bucket in the configured region.
// us-east-1 rejects an explicit LocationConstraint.
func (s *S3) CreateBucket(ctx context.Context, bucket string) error {
	log.Infof("creating %q bucket under %q region", bucket, s.region)

	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if s.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		return pkgerrors.Wrapf(err, "create bucket %q in %q", bucket, s.region)
	}
	return nil
}
