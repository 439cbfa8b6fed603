package cloud

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	pkgerrors "github.com/pkg/errors"
)

// IAMAPI is the subset of the iam client the wrapper touches.
type IAMAPI interface {
	ListUsers(ctx context.Context, params *iam.ListUsersInput, optFns ...func(*iam.Options)) (*iam.ListUsersOutput, error)
	PutUserPolicy(ctx context.Context, params *iam.PutUserPolicyInput, optFns ...func(*iam.Options)) (*iam.PutUserPolicyOutput, error)
}

type IAM struct {
	client IAMAPI
}

// NewIAM wraps an already-built client.
func NewIAM(client IAMAPI) *IAM {
	return &IAM{client: client}
}

func NewIAMClient(ctx context.Context, profile string) (*IAM, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(profile),
	)
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}

	return &IAM{client: iam.NewFromConfig(cfg)}, nil
}

// UserExists reports whether name is among the account's IAM users.
func (c *IAM) UserExists(ctx context.Context, name string) (bool, error) {
	input := &iam.ListUsersInput{}
	for {
		out, err := c.client.ListUsers(ctx, input)
		if err != nil {
			return false, pkgerrors.Wrap(err, "list IAM users")
		}
		for _, user := range out.Users {
			if user.UserName != nil && *user.UserName == name {
				return true, nil
			}
		}
		if !out.IsTruncated {
			return false, nil
		}
		input.Marker = out.Marker
	}
}

// AttachBucketPolicy puts the velero bucket policy inline on user.
func (c *IAM) AttachBucketPolicy(ctx context.Context, user, policyName, bucket string) error {
	log.Infof("assigning %q user policy for bucket %q", user, bucket)

	document, err := BucketPolicy(bucket).JSON()
	if err != nil {
		return err
	}

	_, err = c.client.PutUserPolicy(ctx, &iam.PutUserPolicyInput{
		UserName:       aws.String(user),
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(document),
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "attach policy %q to user %q", policyName, user)
	}
	return nil
}
