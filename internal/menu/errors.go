package menu

import (
	"fmt"
	"strings"
)

// ValidationError reports a request body that cannot become a menu item.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return "missing or empty required fields: " + strings.Join(e.Fields, ", ")
	}
	return "invalid request body: " + e.Reason
}

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("menu item %q not found", e.ID)
}

// StorageError wraps any failure talking to the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
