package converter

import "fmt"

// UnknownUnitError reports a conversion request naming a unit that was never
// declared in the definition source.
type UnknownUnitError struct {
	ID string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unit %q not found", e.ID)
}

// UnreachableError reports that both units exist but no relation path
// connects them.
type UnreachableError struct {
	From, To string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: units are not connected", e.From, e.To)
}

// ZeroValueError reports that an invertive relation was reached while the
// accumulated value was exactly zero, which would divide by zero.
type ZeroValueError struct {
	From, To string
}

func (e *ZeroValueError) Error() string {
	return fmt.Sprintf("cannot convert zero value from %s to %s", e.From, e.To)
}
