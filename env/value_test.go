package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sassert "github.com/saylorsolutions/softly/assert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv sets key to value for the duration of the test, or makes sure it's unset.
func setEnv(t *testing.T, key, value string, unset bool) {
	t.Helper()
	t.Setenv(key, value)
	if unset {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestVal(t *testing.T) {
	const key = "TEST_VAL"

	tests := map[string]struct {
		value    string
		expected string
		unset    bool
	}{
		"Unset": {
			unset:    true,
			expected: "default",
		},
		"Empty": {
			value:    "",
			expected: "default",
		},
		"Trimmed": {
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, key, tc.value, tc.unset)
			assert.Equal(t, tc.expected, Val(key, "default"))
			assert.Equal(t, tc.expected, Val(strings.ToLower(key), "default"), "Keys should be case-insensitive")
		})
	}
}

func TestRequire(t *testing.T) {
	const key = "TEST_REQUIRE"

	setEnv(t, key, "  ", false)
	_, err := Require(key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnset)
	assert.ErrorIs(t, err, &sassert.Failure{}, "A missing variable should be a failed validation")
	assert.Equal(t, "environment variable 'TEST_REQUIRE': not set", err.Error())

	setEnv(t, key, "value", false)
	val, err := Require(key)
	assert.NoError(t, err)
	assert.Equal(t, "value", val)
}

func TestRequire_Invalid(t *testing.T) {
	const key = "TEST_REQUIRE_INVALID"
	setEnv(t, key, "blah", false)

	tests := map[string]func() error{
		"Int": func() error {
			_, err := RequireInt(key)
			return err
		},
		"Float": func() error {
			_, err := RequireFloat(key)
			return err
		},
		"Duration": func() error {
			_, err := RequireDuration(key)
			return err
		},
		"Bool": func() error {
			_, err := RequireBool(key)
			return err
		},
	}
	for name, check := range tests {
		t.Run(name, func(t *testing.T) {
			err := check()
			assert.ErrorIs(t, err, ErrInvalid)
			assert.ErrorIs(t, err, &sassert.Failure{})
			assert.Contains(t, err.Error(), `environment variable 'TEST_REQUIRE_INVALID' with value "blah": invalid value: expected `)
		})
	}
}

func TestBoolIf_EmptyTranslation(t *testing.T) {
	const (
		key        = "TEST_BOOLIF_EMPTY"
		defaultVal = true
	)
	setEnv(t, key, "false", false)
	assert.NotPanics(t, func() {
		got := BoolIf(key, defaultVal, nil)
		assert.Equal(t, defaultVal, got)
	})
}

func TestBoolIf_Whitelist(t *testing.T) {
	const key = "TEST_BOOLIF_WHITELIST"
	translation := map[bool][]string{true: {"enabled"}}

	setEnv(t, key, "ENABLED", false)
	assert.True(t, BoolIf(key, false, translation))
	setEnv(t, key, "disabled", false)
	assert.False(t, BoolIf(key, false, translation))
}

func TestBool(t *testing.T) {
	const key = "TEST_BOOL"
	tests := map[string]struct {
		unset    bool
		value    string
		expected bool
	}{
		"Unset":            {unset: true, expected: false},
		"Empty":            {value: "", expected: false},
		"Not a bool":       {value: "blah", expected: false},
		"Truthy":           {value: DefaultTrue[0], expected: true},
		"Truthy Uppercase": {value: strings.ToUpper(DefaultTrue[1]), expected: true},
		"Falsy":            {value: DefaultFalse[0], expected: false},
		"Falsy Uppercase":  {value: strings.ToUpper(DefaultFalse[1]), expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, key, tc.value, tc.unset)
			assert.Equal(t, tc.expected, Bool(key, false))
		})
	}
}

func TestInt(t *testing.T) {
	const (
		key              = "TEST_INT"
		defaultVal int64 = -17
	)
	tests := map[string]struct {
		unset    bool
		value    string
		expected int64
	}{
		"Unset":      {unset: true, expected: defaultVal},
		"Empty":      {value: "", expected: defaultVal},
		"Not an int": {value: "blah", expected: defaultVal},
		"Positive":   {value: "100", expected: 100},
		"Negative":   {value: "-100", expected: -100},
		"Zero":       {value: "0", expected: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, key, tc.value, tc.unset)
			assert.Equal(t, tc.expected, Int(key, defaultVal))
		})
	}
}

func TestFloat(t *testing.T) {
	const (
		key                = "TEST_FLOAT"
		defaultVal float64 = -17
	)
	tests := map[string]struct {
		unset    bool
		value    string
		expected float64
	}{
		"Unset":        {unset: true, expected: defaultVal},
		"Empty":        {value: "", expected: defaultVal},
		"Not a float":  {value: "blah", expected: defaultVal},
		"Positive Int": {value: "100", expected: 100},
		// This WILL result in rounding, because 1/3 can't be accurately represented with a float.
		"Rounded Fraction": {value: "0.333333333333333333333333", expected: 1.0 / 3.0},
		"Negative Int":     {value: "-100", expected: -100},
		"Zero":             {value: "0", expected: 0.0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, key, tc.value, tc.unset)
			assert.Equal(t, tc.expected, Float(key, defaultVal))
		})
	}
}

func TestDuration(t *testing.T) {
	const (
		key                      = "TEST_DUR"
		defaultVal time.Duration = -5 * time.Minute
	)
	tests := map[string]struct {
		unset    bool
		value    string
		expected time.Duration
	}{
		"Unset":          {unset: true, expected: defaultVal},
		"Empty":          {value: "", expected: defaultVal},
		"Not a duration": {value: "blah", expected: defaultVal},
		"Positive":       {value: "10m", expected: 10 * time.Minute},
		"Negative":       {value: "-10m", expected: -10 * time.Minute},
		"Zero":           {value: "0h", expected: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, key, tc.value, tc.unset)
			assert.Equal(t, tc.expected, Duration(key, defaultVal))
		})
	}
}

func TestLoadFiles(t *testing.T) {
	const (
		loaded = "TEST_DOTENV_LOADED"
		kept   = "TEST_DOTENV_KEPT"
	)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(loaded+"=from-file\n"+kept+"=from-file\n"), 0600))

	setEnv(t, loaded, "", true)
	setEnv(t, kept, "from-env", false)
	require.NoError(t, LoadFiles(path))
	t.Cleanup(func() {
		_ = os.Unsetenv(loaded)
	})

	assert.Equal(t, "from-file", Val(loaded, ""))
	assert.Equal(t, "from-env", Val(kept, ""), "Existing variables should not be overridden")
	assert.Error(t, LoadFiles(filepath.Join(t.TempDir(), "missing.env")))
}
