package domain

import "errors"

// Sentinel errors for the airport lookup domain.
// Wrap these with fmt.Errorf("%w: ...") to add context while keeping errors.Is checks working.
var (
	// ErrStoreUnavailable indicates the reference search store could not be queried.
	// At the HTTP boundary this is a soft failure: 200 with an empty item list.
	ErrStoreUnavailable = errors.New("airport reference store unavailable")
)
