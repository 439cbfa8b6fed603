package velero

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/pkg/errors"
)

// ClientVersion returns the version of the velero client found on
// PATH, e.g. "v1.4.2".
func ClientVersion(ctx context.Context, r Runner) (string, error) {
	if _, err := r.LookPath(); err != nil {
		return "", err
	}

	out, err := r.Output(ctx, "version", "--client-only")
	if err != nil {
		return "", errors.WithMessage(err, "velero version")
	}

	version, err := parseClientVersion(out)
	if err != nil {
		return "", err
	}
	log.Debugf("current velero version is %s", version)

	return version, nil
}

// parseClientVersion extracts the version token from `velero version
// --client-only` output:
//
//	Client:
//	        Version: v1.4.2
//	        Git commit: 56a08a4d695d893f0863f697c2f926e27d70c0c5
func parseClientVersion(out []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "Version:") {
			continue
		}
		if fields := strings.Fields(line); len(fields) == 2 {
			return fields[1], nil
		}
	}
	return "", errors.Errorf("no client version in output:\n%s", string(out))
}

// CheckVersion fails unless the installed velero client matches
// RequiredVersion exactly.
func CheckVersion(ctx context.Context, r Runner) error {
	version, err := ClientVersion(ctx, r)
	if err != nil {
		return util.NewExitError(util.ExitWrongVersion, err)
	}

	if version != RequiredVersion {
		return util.NewExitError(util.ExitWrongVersion,
			errors.Errorf("wrong velero version: found %s, require %s", version, RequiredVersion))
	}
	return nil
}
