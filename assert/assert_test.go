//go:build !noassert

package assert_test

import (
	"errors"
	"testing"

	"github.com/saylorsolutions/softly/assert"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverFailure(t *testing.T, fn func()) (f *assert.Failure) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "Should have panicked")
		var ok bool
		f, ok = assert.AsFailure(r)
		require.True(t, ok, "Panic value should be a *Failure, got %T", r)
	}()
	fn()
	return nil
}

func TestNotEmpty(t *testing.T) {
	var (
		slice []byte
		str   string
		mapp  map[string]bool
		// Sticking with the most common types as an example, but there are others supported.
	)
	tests := map[string]any{
		"Empty slice":  slice,
		"Empty string": str,
		"Empty map":    mapp,
	}
	for name, val := range tests {
		t.Run(name, func(t *testing.T) {
			f := recoverFailure(t, func() {
				assert.NotEmpty(name, val)
			})
			tassert.Equal(t, "assertion '"+name+"' failed: value is empty", f.Message())
		})
	}
}

func TestNotEmpty_NoLen(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := assert.AsFailure(r)
		tassert.False(t, ok, "A value without a length is a defect, not a failed validation")
	}()
	assert.NotEmpty("int", 5)
}

func TestTrue(t *testing.T) {
	tassert.NotPanics(t, func() {
		assert.True("true", true)
		assert.TrueFunc("returns true", func() bool {
			return true
		})
		assert.Equal("equal", 1, 1)
		assert.NoError("no error", nil)
	})
}

func TestTrue_Failure(t *testing.T) {
	f := recoverFailure(t, func() {
		assert.True("is positive", false)
	})
	tassert.Equal(t, "assertion 'is positive' failed", f.Message())
	tassert.Contains(t, f.Caller(), "assert_test.go#")
}

func TestEqual_Failure(t *testing.T) {
	f := recoverFailure(t, func() {
		assert.Equal("count", 2, 1)
	})
	tassert.Equal(t, "assertion 'count' failed: expected 2 but was 1", f.Error())
}

func TestNoError_Failure(t *testing.T) {
	ErrTesting := errors.New("boom")
	f := recoverFailure(t, func() {
		assert.NoError("load", ErrTesting)
	})
	tassert.ErrorIs(t, f, ErrTesting)
	tassert.Equal(t, "assertion 'load' failed: unexpected error", f.Message())
	tassert.Equal(t, "assertion 'load' failed: unexpected error: boom", f.Error())
}

func TestFail(t *testing.T) {
	ErrTesting := errors.New("cause")
	f := recoverFailure(t, func() {
		assert.Fail("wrapped %w", ErrTesting)
	})
	tassert.Equal(t, "wrapped cause", f.Error())
	tassert.ErrorIs(t, f, ErrTesting)
}

func TestDisable(t *testing.T) {
	assert.Disable()
	t.Cleanup(func() {
		assert.Enable()
	})
	tassert.NotPanics(t, func() {
		assert.True("false", false)
		assert.TrueFunc("also false", func() bool {
			return false
		})
		assert.NotEmpty("empty string", "")
		assert.Equal("unequal", 1, 2)
		assert.Fail("always")
	})
}
