package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotAuthenticated indicates the request carries no valid session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthorized indicates the session user lacks the required role.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidQuantity indicates a cart quantity below 1.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyCart indicates checkout was attempted with no line items.
	ErrEmptyCart = errors.New("empty cart")
)
