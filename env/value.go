package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/saylorsolutions/softly/assert"
)

var (
	ErrUnset   = errors.New("not set")
	ErrInvalid = errors.New("invalid value")
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool] and [RequireBool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool] and [RequireBool], and can be changed.
)

// LoadFiles loads variables from the given dotenv files, or ".env" in the working directory if none are given.
// Variables that are already set in the environment are not overridden.
func LoadFiles(paths ...string) error {
	return godotenv.Load(paths...)
}

// Lookup gets the trimmed value of an environment variable.
// Keys are compared case-insensitive, and a value that is empty after trimming is reported as not found.
func Lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, entry := range os.Environ() {
		k, val, found := strings.Cut(entry, "=")
		if !found || strings.ToLower(k) != key {
			continue
		}
		trimmed := strings.TrimSpace(val)
		return trimmed, len(trimmed) > 0
	}
	return "", false
}

// Require gets the value of an environment variable, or returns an [*assert.Failure] caused by [ErrUnset].
func Require(key string) (string, error) {
	val, ok := Lookup(key)
	if !ok {
		return "", assert.NewFailure(fmt.Sprintf("environment variable '%s'", key), ErrUnset)
	}
	return val, nil
}

func invalid(key, val, expected string) error {
	return assert.NewFailure(
		fmt.Sprintf("environment variable '%s' with value %q", key, val),
		fmt.Errorf("%w: expected %s", ErrInvalid, expected),
	)
}

// RequireInt interprets an environment variable as an integer.
// The returned error is an [*assert.Failure] caused by [ErrUnset] or [ErrInvalid].
func RequireInt(key string) (int64, error) {
	sval, err := Require(key)
	if err != nil {
		return 0, err
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return 0, invalid(key, sval, "an integer")
	}
	return ival, nil
}

// RequireFloat interprets an environment variable as a float64.
// The returned error is an [*assert.Failure] caused by [ErrUnset] or [ErrInvalid].
func RequireFloat(key string) (float64, error) {
	sval, err := Require(key)
	if err != nil {
		return 0, err
	}
	fval, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, invalid(key, sval, "a number")
	}
	return fval, nil
}

// RequireDuration interprets an environment variable as a [time.Duration].
// The returned error is an [*assert.Failure] caused by [ErrUnset] or [ErrInvalid].
func RequireDuration(key string) (time.Duration, error) {
	sval, err := Require(key)
	if err != nil {
		return 0, err
	}
	dval, err := time.ParseDuration(sval)
	if err != nil {
		return 0, invalid(key, sval, "a duration")
	}
	return dval, nil
}

// RequireBool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The returned error is an [*assert.Failure] caused by [ErrUnset] or [ErrInvalid].
func RequireBool(key string) (bool, error) {
	return requireBool(key, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}

func requireBool(key string, translation map[bool][]string) (bool, error) {
	sval, err := Require(key)
	if err != nil {
		return false, err
	}
	for _, result := range []bool{true, false} {
		for _, candidate := range translation[result] {
			if strings.EqualFold(sval, candidate) {
				return result, nil
			}
		}
	}
	return false, invalid(key, sval, "a boolean")
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

// BoolIf allows translating an environment variable string value to a boolean using the given translation map.
// It's expected for the user to populate translation with a set of strings that relate to the map key.
// A whitelist for one particular value can be created by setting either the true or false slice to be empty.
// These values will be compared in a case-insensitive way.
//
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	bval, err := requireBool(key, translation)
	if err != nil {
		return defaultVal
	}
	return bval
}

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	bval, err := RequireBool(key)
	if err != nil {
		return defaultVal
	}
	return bval
}

// Int will attempt to interpret an environment variable as an integer, returning the defaultVal if the environment variable isn't found or can't be a valid integer.
func Int(key string, defaultVal int64) int64 {
	ival, err := RequireInt(key)
	if err != nil {
		return defaultVal
	}
	return ival
}

// Float will attempt to interpret an environment variable as a float64, returning the defaultVal if the environment variable isn't found or can't be a valid float64.
func Float(key string, defaultVal float64) float64 {
	fval, err := RequireFloat(key)
	if err != nil {
		return defaultVal
	}
	return fval
}

// Duration will attempt to interpret an environment variable as a [time.Duration], returning the defaultVal if the environment variable isn't found or can't be a valid [time.Duration].
func Duration(key string, defaultVal time.Duration) time.Duration {
	dval, err := RequireDuration(key)
	if err != nil {
		return defaultVal
	}
	return dval
}
