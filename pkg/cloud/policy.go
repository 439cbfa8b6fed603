package cloud

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// PolicyDocument is an inline IAM policy.
type PolicyDocument struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

type Statement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

// BucketPolicy returns the policy granting the velero user the EC2
// snapshot and S3 object permissions it needs against bucket.
func BucketPolicy(bucket string) PolicyDocument {
	return PolicyDocument{
		Version: "2012-10-17",
		Statement: []Statement{
			{
				Effect: "Allow",
				Action: []string{
					"ec2:DescribeVolumes",
					"ec2:DescribeSnapshots",
					"ec2:CreateTags",
					"ec2:CreateVolume",
					"ec2:CreateSnapshot",
					"ec2:DeleteSnapshot",
				},
				Resource: []string{"*"},
			},
			{
				Effect: "Allow",
				Action: []string{
					"s3:GetObject",
					"s3:DeleteObject",
					"s3:PutObject",
					"s3:AbortMultipartUpload",
					"s3:ListMultipartUploadParts",
				},
				Resource: []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
			{
				Effect:   "Allow",
				Action:   []string{"s3:ListBucket"},
				Resource: []string{fmt.Sprintf("arn:aws:s3:::%s", bucket)},
			},
		},
	}
}

func (p PolicyDocument) JSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}
