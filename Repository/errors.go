package Repository

import "errors"

// Domain failures the handlers translate into HTTP statuses. Store-level
// failures never surface here; the adapters degrade to empty results and
// the coordinator falls back to the other store.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyCompleted  = errors.New("service already completed")
	ErrSignatureRequired = errors.New("signature is required to complete a service")
)
