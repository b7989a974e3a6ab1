package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrInfeasibleGeometry = errors.New("item does not fit")
	ErrMissingMaterial    = errors.New("material not found")
	ErrMissingEquipment   = errors.New("equipment not found")
	ErrInvalidOptions     = errors.New("invalid options")
)

// Error reports why a calculator refused a request. It unwraps to one of the
// Err* kinds above.
type Error struct {
	Kind       error
	Calculator string
	Msg        string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	prefix := e.Kind.Error()
	if e.Calculator != "" {
		prefix = e.Calculator + ": " + prefix
	}
	if e.Msg == "" {
		return prefix
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func failf(kind error, calc, format string, args ...any) error {
	return &Error{Kind: kind, Calculator: calc, Msg: fmt.Sprintf(format, args...)}
}

func infeasiblef(calc, format string, args ...any) error {
	return failf(ErrInfeasibleGeometry, calc, format, args...)
}

func invalidf(calc, format string, args ...any) error {
	return failf(ErrInvalidOptions, calc, format, args...)
}

func missingMaterial(calc, id string) error {
	return failf(ErrMissingMaterial, calc, "%q", id)
}

func missingEquipment(calc, id string) error {
	return failf(ErrMissingEquipment, calc, "%q", id)
}

// wrap prefixes a child step's error with the composite calculator's slug.
func wrap(calc string, err error) error {
	return fmt.Errorf("%s: %w", calc, err)
}
