package apperrors

import "errors"

// ErrNotFound indicates that a referenced plan, cooperation, company,
// tenure or request does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting party is not the planner,
// coordinator or candidate the operation requires.
var ErrForbidden = errors.New("actor is not authorized for this operation")

// ErrConflict indicates that a uniqueness invariant would be violated,
// e.g. a second pending coordination transfer request for the same tenure.
var ErrConflict = errors.New("conflicting state")

// ErrInvalidStateTransition indicates an operation attempted on an entity
// in the wrong lifecycle state. No side effects are applied; the caller may
// recover.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrInvalidTransferPair indicates a ledger posting that violates the
// debit/credit kind table for its transfer type. This is always a
// programming defect in a caller, never a user-facing condition.
var ErrInvalidTransferPair = errors.New("illegal debit/credit pair for transfer type")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
