package entity

import "errors"

var (
	// ErrNotFound means the referenced post (or related record) does not exist.
	ErrNotFound = errors.New("post not found")

	// ErrForbidden means the authenticated user does not own the resource.
	ErrForbidden = errors.New("not enough permissions")

	// ErrUnauthorized means the request carries no resolvable identity.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrAlreadyLiked means a concurrent toggle already inserted the like row.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrDuplicateUser means the email or username is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)
