package velero

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ValidateCredentialsFile checks the secret file exists and looks like
// an AWS shared-credentials file before velero install mounts it.
func ValidateCredentialsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read secret file %q", path)
	}

	content := string(data)
	for _, key := range []string{"aws_access_key_id", "aws_secret_access_key"} {
		if !strings.Contains(content, key) {
			return errors.Errorf("secret file %q has no %q entry", path, key)
		}
	}
	return nil
}
