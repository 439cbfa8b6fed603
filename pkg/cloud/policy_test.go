package cloud

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketPolicy(t *testing.T) {
	p := BucketPolicy("kops-backups")

	assert.Equal(t, "2012-10-17", p.Version)
	require.Len(t, p.Statement, 3)

	assert.Equal(t, []string{"*"}, p.Statement[0].Resource)
	assert.Contains(t, p.Statement[0].Action, "ec2:CreateSnapshot")

	assert.Equal(t, []string{"arn:aws:s3:::kops-backups/*"}, p.Statement[1].Resource)
	assert.Contains(t, p.Statement[1].Action, "s3:PutObject")

	assert.Equal(t, []string{"s3:ListBucket"}, p.Statement[2].Action)
	assert.Equal(t, []string{"arn:aws:s3:::kops-backups"}, p.Statement[2].Resource)
}

func TestBucketPolicyJSON(t *testing.T) {
	doc, err := BucketPolicy("b").JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))
	assert.Equal(t, "2012-10-17", decoded["Version"])
}
