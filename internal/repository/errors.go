package repository

import "errors"

// ErrNotFound is returned when a preference key has no stored value. It hides
// the driver's `sql.ErrNoRows` from the service layer.
var ErrNotFound = errors.New("repository: not found")
