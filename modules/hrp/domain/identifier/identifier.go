package identifier

import (
	"errors"
	"fmt"
	"regexp"
)

type Kind string

const (
	KindNetID      Kind = "netid"
	KindRegID      Kind = "regid"
	KindEmployeeID Kind = "employee_id"
)

var (
	ErrInvalidNetID      = errors.New("invalid netid")
	ErrInvalidRegID      = errors.New("invalid regid")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
)

var (
	netIDPattern      = regexp.MustCompile(`(?i)^[a-z][a-z0-9\-_.]{0,127}$`)
	regIDPattern      = regexp.MustCompile(`(?i)^[a-f0-9]{32}$`)
	employeeIDPattern = regexp.MustCompile(`^[0-9]{9}$`)
)

// InvalidError reports an identifier that failed its format check.
// It matches the per-kind sentinel errors with errors.Is.
type InvalidError struct {
	Kind  Kind
	Value string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}

func (e *InvalidError) Is(target error) bool {
	switch e.Kind {
	case KindNetID:
		return target == ErrInvalidNetID
	case KindRegID:
		return target == ErrInvalidRegID
	case KindEmployeeID:
		return target == ErrInvalidEmployeeID
	default:
		return false
	}
}

func ValidNetID(v string) bool      { return netIDPattern.MatchString(v) }
func ValidRegID(v string) bool      { return regIDPattern.MatchString(v) }
func ValidEmployeeID(v string) bool { return employeeIDPattern.MatchString(v) }

func Valid(kind Kind, v string) bool {
	switch kind {
	case KindNetID:
		return ValidNetID(v)
	case KindRegID:
		return ValidRegID(v)
	case KindEmployeeID:
		return ValidEmployeeID(v)
	default:
		return false
	}
}

// Check returns an *InvalidError when v is not a well-formed identifier of the given kind.
func Check(kind Kind, v string) error {
	if Valid(kind, v) {
		return nil
	}
	return &InvalidError{Kind: kind, Value: v}
}

// Detect guesses the kind of an identifier. Employee ids are tried first,
// then regids, since a 32 character hex string is also a well-formed netid.
func Detect(v string) (Kind, error) {
	switch {
	case ValidEmployeeID(v):
		return KindEmployeeID, nil
	case ValidRegID(v):
		return KindRegID, nil
	case ValidNetID(v):
		return KindNetID, nil
	default:
		return "", fmt.Errorf("unrecognized identifier %q", v)
	}
}
