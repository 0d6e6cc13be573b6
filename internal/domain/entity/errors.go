// internal/domain/entity/errors.go
package entity

import "errors"

// Expected, user-facing outcomes. Everything else that bubbles out of the
// usecases is treated as an internal failure by the HTTP layer.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateRequest = errors.New("duplicate request within dedup window")
)
