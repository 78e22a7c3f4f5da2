package social

import "errors"

// Error kinds. Every error returned by a store for a domain reason wraps
// exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Error is a domain error of a given kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	ErrUserNotFound       = &Error{Kind: ErrNotFound, Message: "user not found"}
	ErrPostNotFound       = &Error{Kind: ErrNotFound, Message: "post not found"}
	ErrProfileNotFound    = &Error{Kind: ErrNotFound, Message: "profile not found"}
	ErrMemberTypeNotFound = &Error{Kind: ErrNotFound, Message: "member type not found"}

	ErrProfileExists    = &Error{Kind: ErrConflict, Message: "user already has a profile"}
	ErrMemberTypeExists = &Error{Kind: ErrConflict, Message: "member type already exists"}
	ErrMemberTypeInUse  = &Error{Kind: ErrConflict, Message: "member type is referenced by profiles"}
	ErrDuplicateId      = &Error{Kind: ErrConflict, Message: "duplicate id"}

	ErrUnknownUser       = &Error{Kind: ErrValidation, Message: "user does not exist"}
	ErrUnknownMemberType = &Error{Kind: ErrValidation, Message: "member type does not exist"}
	ErrSelfSubscription  = &Error{Kind: ErrValidation, Message: "user cannot subscribe to itself"}
	ErrNotSubscribed     = &Error{Kind: ErrValidation, Message: "user is not subscribed"}
)
