package apperrors

import "errors"

// Sentinel errors for the failure modes the API can report. Services wrap
// these with fmt.Errorf("%w: ...") to add context; handlers match them with
// errors.Is to pick a status code.
var (
	// ErrUnauthenticated means the request carried no usable identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the identity is valid but lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a request field is malformed or out of range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")

	// ErrEmptyCart rejects a checkout on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientStock rejects a checkout that would oversell a product.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStatus rejects an unknown order status or an illegal transition.
	ErrInvalidStatus = errors.New("invalid order status")
)
