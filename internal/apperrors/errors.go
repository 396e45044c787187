package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation collides with existing state,
// e.g. opening a register while another one is still open.
var ErrConflict = errors.New("conflicting state")

// ErrNoOpenRegister indicates that a movement or sale was attempted while no
// register is open. Callers must open a register first.
var ErrNoOpenRegister = errors.New("no open register")
