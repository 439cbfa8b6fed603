package cloud

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	headErr error

	created []*s3.CreateBucketInput
}

var _ S3API = &fakeS3{}

func (f *fakeS3) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = append(f.created, params)
	return &s3.CreateBucketOutput{}, nil
}

func TestBucketExists(t *testing.T) {
	s := &S3{client: &fakeS3{}, region: "us-west-2"}

	exists, err := s.BucketExists(context.TODO(), "kops-backups")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBucketExistsNotFound(t *testing.T) {
	s := &S3{client: &fakeS3{headErr: &types.NotFound{}}, region: "us-west-2"}

	exists, err := s.BucketExists(context.TODO(), "kops-backups")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateBucket(t *testing.T) {
	fake := &fakeS3{}
	s := &S3{client: fake, region: "us-west-2"}

	require.NoError(t, s.CreateBucket(context.TODO(), "kops-backups"))

	require.Len(t, fake.created, 1)
	input := fake.created[0]
	assert.Equal(t, "kops-backups", *input.Bucket)
	require.NotNil(t, input.CreateBucketConfiguration)
	assert.Equal(t, types.BucketLocationConstraint("us-west-2"), input.CreateBucketConfiguration.LocationConstraint)
}

func TestCreateBucketUsEast1(t *testing.T) {
	fake := &fakeS3{}
	s := &S3{client: fake, region: "us-east-1"}

	require.NoError(t, s.CreateBucket(context.TODO(), "kops-backups"))

	require.Len(t, fake.created, 1)
	assert.Nil(t, fake.created[0].CreateBucketConfiguration)
}
