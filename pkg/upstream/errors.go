package upstream

import "errors"

var (
	errStatus          = errors.New("upstream returned non-200 status")
	errDecode          = errors.New("failed to decode upstream response")
	errRequest         = errors.New("upstream request failed")
	errOutOfRange      = errors.New("snapshot value out of range")
	errMissingSnapshot = errors.New("upstream returned no snapshot")
)
