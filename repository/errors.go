package repository

import "fmt"

// ReferenceError reports a foreign key that did not resolve during a write.
// The containing transaction is rolled back before it is returned.
type ReferenceError struct {
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}
