package velero

import (
	"context"
	"testing"

	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	output  []byte
	err     error
	lookErr error

	calls [][]string
}

var _ Runner = &fakeRunner{}

func (f *fakeRunner) LookPath() (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/local/bin/velero", nil
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) error {
	f.calls = append(f.calls, args)
	return f.err
}

func (f *fakeRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

const versionOutput = `Client:
	Version: v1.4.2
	Git commit: 56a08a4d695d893f0863f697c2f926e27d70c0c5
`

func TestClientVersion(t *testing.T) {
	r := &fakeRunner{output: []byte(versionOutput)}

	version, err := ClientVersion(context.TODO(), r)
	require.NoError(t, err)
	assert.Equal(t, "v1.4.2", version)

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"version", "--client-only"}, r.calls[0])
}

func TestClientVersionNoBinary(t *testing.T) {
	r := &fakeRunner{lookErr: errors.New("executable file not found in $PATH")}

	_, err := ClientVersion(context.TODO(), r)
	assert.Error(t, err)
	assert.Empty(t, r.calls)
}

func TestParseClientVersionGarbage(t *testing.T) {
	_, err := parseClientVersion([]byte("An error occurred\n"))
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	r := &fakeRunner{output: []byte(versionOutput)}
	assert.NoError(t, CheckVersion(context.TODO(), r))
}

func TestCheckVersionMismatch(t *testing.T) {
	r := &fakeRunner{output: []byte("Client:\n\tVersion: v1.9.0\n")}

	err := CheckVersion(context.TODO(), r)
	require.Error(t, err)
	assert.Equal(t, util.ExitWrongVersion, util.ExitCode(err))
}

func TestCheckVersionMissingBinary(t *testing.T) {
	r := &fakeRunner{lookErr: errors.New("executable file not found in $PATH")}

	err := CheckVersion(context.TODO(), r)
	require.Error(t, err)
	assert.Equal(t, util.ExitWrongVersion, util.ExitCode(err))
}
