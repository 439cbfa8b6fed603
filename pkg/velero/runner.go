package velero

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/pkg/errors"
)

// Runner executes the external velero binary. Run streams output to
// the terminal for long operations, Output captures it for parsing.
type Runner interface {
	LookPath() (string, error)

	Run(ctx context.Context, args ...string) error

	Output(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

var _ Runner = &execRunner{}

func NewRunner() Runner {
	return &execRunner{binary: Velero}
}

func (r *execRunner) LookPath() (string, error) {
	path, err := exec.LookPath(r.binary)
	if err != nil {
		return "", errors.Wrapf(err, "%q binary not found in PATH", r.binary)
	}
	return path, nil
}

func (r *execRunner) Run(ctx context.Context, args ...string) error {
	log.Infof("running command: %s %s", r.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s %s", r.binary, strings.Join(args, " "))
	}
	return nil
}

func (r *execRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	log.Debugf("running command: %s %s", r.binary, strings.Join(args, " "))

	out, err := exec.CommandContext(ctx, r.binary, args...).CombinedOutput()
	if err != nil {
		return out, errors.Errorf("%s, %v", string(out), err)
	}
	return out, nil
}
