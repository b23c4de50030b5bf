package entities

import "fmt"

// InvalidEnumNameError is returned when a name does not match any variant of
// an enumerated type.
type InvalidEnumNameError struct {
	Enum string
	Name string
}

func (e *InvalidEnumNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q", e.Enum, e.Name)
}
