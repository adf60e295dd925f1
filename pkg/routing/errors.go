package routing

import "errors"

var (
	ErrInvalidPattern   = errors.New("invalid route pattern")
	ErrDuplicatePattern = errors.New("duplicate route pattern")
	ErrDuplicatePage    = errors.New("page bound to more than one route")
	ErrUnknownPage      = errors.New("unknown page")
	ErrMissingParam     = errors.New("missing route parameter")
	ErrUnknownVariant   = errors.New("unknown route table variant")
	ErrInvalidHistory   = errors.New("invalid history mode")
)
