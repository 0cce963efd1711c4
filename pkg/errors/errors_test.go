package errors_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "could not load config")
	assert.Equal(t, "[CONFIG_LOAD] could not load config", err.Error())
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := errors.Wrap(inner, errors.ErrFileAccess, "failed to read settings")

	assert.Equal(t, "[FILE_ACCESS] failed to read settings: permission denied", err.Error())
	assert.Equal(t, inner, err.Unwrap())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should be nil"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrDuplicateDest, "duplicate destination: %s", ".claude/settings.json")

	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateDest))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrDuplicateDest))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := errors.New(errors.ErrVendorTree, "vendored tree missing")
	outer := fmt.Errorf("loading library: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrVendorTree))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDuplicateDest, "duplicate destination").
		WithDetail("destination", ".claude/settings.json")

	assert.Equal(t, ".claude/settings.json", err.Details["destination"])
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain error")))
}
