package showroom

import "errors"

var (
	ErrUnknownSection  = errors.New("unknown configuration section")
	ErrSectionMismatch = errors.New("patch does not belong to section")
	ErrUnknownOption   = errors.New("unknown customization option")
	ErrInvalidShape    = errors.New("invalid configuration shape")
	// Raised (as a panic) when a store is requested from a context that
	// never had one installed.
	ErrStoreMissing = errors.New("configuration store is not installed in context")
)
