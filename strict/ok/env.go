package ok

import (
	"errors"
	"fmt"
	"os"

	"github.com/LerianStudio/lib-strict/strict"
)

// ErrNotSet is the cause when Getenv finds no such variable.
var ErrNotSet = errors.New("variable is not set")

// Getenv returns the value of an environment variable. An unset variable
// fails; a variable set to "" does not.
func Getenv(key string) (string, error) {
	if key == "" {
		return "", strict.NewInvalidArgument("Getenv", "empty key")
	}

	value, found := os.LookupEnv(key)
	if !found {
		return "", strict.NewUnexpectedFailure("Getenv", fmt.Errorf("%w: %s", ErrNotSet, key))
	}

	return value, nil
}

// GetenvOrDefault returns the value of an environment variable, or def when
// it is unset or empty.
func GetenvOrDefault(key, def string) string {
	value, err := Getenv(key)
	if err != nil || value == "" {
		return def
	}

	return value
}

// Setenv sets an environment variable and returns its previous value, "" if
// it was unset.
func Setenv(key, value string) (string, error) {
	if key == "" {
		return "", strict.NewInvalidArgument("Setenv", "empty key")
	}

	previous := os.Getenv(key)

	if err := os.Setenv(key, value); err != nil {
		return "", strict.NewUnexpectedFailure("Setenv", err)
	}

	return previous, nil
}
