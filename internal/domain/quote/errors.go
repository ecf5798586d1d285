package quote

import "errors"

// Quote-engine failures are request-scoped: they surface to the caller and
// never touch shared catalog state.
var (
	ErrInvalidPackage     = errors.New("package weight out of bounds")
	ErrMissingCoordinates = errors.New("location has no resolvable coordinates")
	ErrEmptyBatch         = errors.New("no candidate quotes to score")
	ErrUnknownServiceTier = errors.New("service tier not in catalog")
)
