package util

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitGeneral, ExitCode(errors.New("boom")))

	err := NewExitError(ExitWrongVersion, errors.New("wrong velero version"))
	assert.Equal(t, ExitWrongVersion, ExitCode(err))

	// wrapped codes survive
	wrapped := errors.WithMessage(NewExitError(ExitMissingIAMUser, errors.New("no user")), "install")
	assert.Equal(t, ExitMissingIAMUser, ExitCode(wrapped))
}

func TestExitErrorMessage(t *testing.T) {
	err := NewExitError(ExitGeneral, errors.New("bucket exists"))
	assert.Equal(t, "bucket exists", err.Error())
}
