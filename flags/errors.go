package flags

import "github.com/cockroachdb/errors"

// Usage errors. Every error the parser returns for bad user input is marked with one of these,
// so callers can use errors.Is no matter how much context was wrapped around it.
var (
	ErrUnrecognizedFlag  = errors.New("unrecognized flag")
	ErrMissingValue      = errors.New("missing value for flag")
	ErrUnexpectedValue   = errors.New("unexpected value for flag")
	ErrModeConflict      = errors.New("unexpected argument, not valid in this context")
	ErrOverwrite         = errors.New("tried to overwrite flag")
	ErrInvalidText       = errors.New("value is not valid text")
	ErrEmptyValue        = errors.New("empty value for flag")
	ErrInvalidGeneration = errors.New("invalid generation")
)

var usageErrors = []error{
	ErrUnrecognizedFlag,
	ErrMissingValue,
	ErrUnexpectedValue,
	ErrModeConflict,
	ErrOverwrite,
	ErrInvalidText,
	ErrEmptyValue,
	ErrInvalidGeneration,
}

// IsUsageError reports whether err was caused by the command line the user typed.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}

	for _, usageErr := range usageErrors {
		if errors.Is(err, usageErr) {
			return true
		}
	}

	return false
}

func markf(sentinel error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), sentinel)
}
