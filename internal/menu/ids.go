package menu

import "github.com/google/uuid"

// NewID mints a random (version 4) UUID for a new menu item.
func NewID() string {
	return uuid.NewString()
}
