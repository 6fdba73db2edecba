package soft

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/saylorsolutions/softly/assert"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_States(t *testing.T) {
	u := NewUnit()
	tassert.Equal(t, Idle, u.State())
	tassert.ErrorIs(t, u.End(), ErrUnitNotStarted)

	require.NoError(t, u.Begin())
	tassert.Equal(t, Active, u.State())
	tassert.ErrorIs(t, u.Begin(), ErrUnitStarted)

	That(u.Soft(), 1).IsEqualTo(2)
	tassert.Error(t, u.Hook()())
	tassert.Equal(t, Failed, u.State())

	tassert.NoError(t, u.End(), "Ending again should be harmless")
	tassert.Equal(t, Failed, u.State(), "Ending again should not change the outcome")
}

func TestUnit_Passed(t *testing.T) {
	u := NewUnit()
	require.NoError(t, u.Begin())
	That(u.Soft(), 1).IsEqualTo(1)
	tassert.NoError(t, u.End())
	tassert.Equal(t, Passed, u.State())
}

func TestState_String(t *testing.T) {
	tassert.Equal(t, "finalizing", Finalizing.String())
	tassert.Equal(t, "State(42)", State(42).String())
}

func TestRun_EndToEnd(t *testing.T) {
	calls := 0
	err := Run(func(s *Soft) error {
		calls++
		That(s, 2).IsEqualTo(2)
		That(s, 1).IsEqualTo(2)
		ThatSlice(s, []int{1, 2, 3}).Contains(5)
		return nil
	})
	tassert.Equal(t, 1, calls)
	tassert.Equal(t, []string{"expected 2 but was 1", "expected list to contain 5"}, messages(t, err))

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	tassert.Len(t, agg.Unwrap(), 2, "All failures should be in one aggregate")
}

func TestRun_Passing(t *testing.T) {
	tassert.NoError(t, Run(func(s *Soft) error {
		That(s, "a").IsNotZero()
		return nil
	}))
}

func TestUnit_Run_Reused(t *testing.T) {
	u := NewUnit()
	require.NoError(t, u.Run(func(s *Soft) error { return nil }))
	tassert.ErrorIs(t, u.Run(func(s *Soft) error { return nil }), ErrUnitStarted)
}

func TestRun_EscapedFailure(t *testing.T) {
	err := Run(func(s *Soft) error {
		That(s, 1).IsEqualTo(2)
		assert.True("unwrapped", false)
		return nil
	})
	tassert.Equal(t, []string{"expected 2 but was 1", "assertion 'unwrapped' failed"}, messages(t, err))
}

func TestRun_ReturnedFailure(t *testing.T) {
	err := Run(func(s *Soft) error {
		return assert.NewFailure("returned", nil)
	})
	tassert.Equal(t, []string{"returned"}, messages(t, err))
}

func TestRun_UnrelatedError(t *testing.T) {
	ErrUnrelated := errors.New("unrelated")

	err := Run(func(s *Soft) error {
		return ErrUnrelated
	})
	tassert.Same(t, ErrUnrelated, err, "The unrelated error should be returned as-is when nothing was captured")

	err = Run(func(s *Soft) error {
		That(s, 1).IsEqualTo(2)
		return ErrUnrelated
	})
	tassert.ErrorIs(t, err, ErrUnrelated)
	tassert.Equal(t, []string{"expected 2 but was 1"}, messages(t, err), "Captured failures should not be dropped")

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	tassert.Same(t, ErrUnrelated, joined.Unwrap()[0], "The unrelated error should take priority")
}

func TestRun_UnrelatedPanic(t *testing.T) {
	var (
		buf bytes.Buffer
		log = slog.New(slog.NewTextHandler(&buf, nil))
		u   = NewUnit(WithLogger(log))
	)
	tassert.PanicsWithValue(t, "defect", func() {
		_ = u.Run(func(s *Soft) error {
			That(s, 1).IsEqualTo(2)
			panic("defect")
		})
	})
	tassert.Equal(t, Failed, u.State())
	tassert.Contains(t, buf.String(), "Unit of work aborted with captured validation failures")
	tassert.Contains(t, buf.String(), "expected 2 but was 1")
	tassert.Contains(t, buf.String(), "reason=defect")
}
