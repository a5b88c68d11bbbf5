package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel every load failure matches with errors.Is.
// Callers that don't care about the exact rule violated can test against it
// alone; the concrete *LoadError carries the detail.
var ErrInvalidConfig = errors.New("invalid configuration")

// Kind categorizes configuration load failures.
type Kind uint8

const (
	// KindMissingKey indicates a required scalar key is absent.
	KindMissingKey Kind = iota + 1
	// KindInvalidValue indicates a scalar is present but unparseable or out of range.
	KindInvalidValue
	// KindFileNotFound indicates a declared certificate file path does not exist.
	KindFileNotFound
	// KindEmptyContent indicates declared inline certificate content is empty.
	KindEmptyContent
	// KindMutuallyExclusive indicates both the file and content variant of a
	// credential were supplied.
	KindMutuallyExclusive
	// KindRequiredMissing indicates neither the file nor content variant of a
	// credential was supplied.
	KindRequiredMissing
	// KindNameTooLong indicates a passthrough channel name exceeds the limit.
	KindNameTooLong
	// KindParseError indicates the underlying INI text could not be parsed.
	KindParseError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindMissingKey:
		return "missing key"
	case KindInvalidValue:
		return "invalid value"
	case KindFileNotFound:
		return "file not found"
	case KindEmptyContent:
		return "empty content"
	case KindMutuallyExclusive:
		return "mutually exclusive"
	case KindRequiredMissing:
		return "required missing"
	case KindNameTooLong:
		return "name too long"
	case KindParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// LoadError describes a single configuration load failure with enough
// context (section, key, offending value) for operator remediation.
// Loading fails fast: the first violated rule produces the one LoadError
// the caller sees.
type LoadError struct {
	// Kind categorizes the failure.
	Kind Kind
	// Section is the INI section the failure occurred in.
	Section string
	// Key is the offending key, or "File/Content" pair for credential
	// cardinality violations.
	Key string
	// Value is the offending value, when one was present.
	Value string
	// Err is the underlying error for parse failures.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch e.Kind {
	case KindMissingKey:
		return fmt.Sprintf("%s.%s: required key not found", e.Section, e.Key)
	case KindInvalidValue:
		return fmt.Sprintf("%s.%s: invalid value %q", e.Section, e.Key, e.Value)
	case KindFileNotFound:
		return fmt.Sprintf("%s.%s: file %q does not exist", e.Section, e.Key, e.Value)
	case KindEmptyContent:
		return fmt.Sprintf("%s.%s: has invalid empty value", e.Section, e.Key)
	case KindMutuallyExclusive:
		return fmt.Sprintf("%s: %s are mutually exclusive settings", e.Section, e.Key)
	case KindRequiredMissing:
		return fmt.Sprintf("%s: one of %s is required", e.Section, e.Key)
	case KindNameTooLong:
		return fmt.Sprintf("%s.%s: channel name %q too long", e.Section, e.Key, e.Value)
	case KindParseError:
		if e.Err != nil {
			return fmt.Sprintf("parsing configuration: %v", e.Err)
		}
		return "parsing configuration failed"
	default:
		return "configuration load failed"
	}
}

// Unwrap returns the underlying error, if any.
func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidConfig, so callers can use
// errors.Is without knowing the concrete type.
func (e *LoadError) Is(target error) bool { return target == ErrInvalidConfig }

// KindOf extracts the failure Kind from an error returned by the loader.
// It returns 0 when err is not a *LoadError.
func KindOf(err error) Kind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
