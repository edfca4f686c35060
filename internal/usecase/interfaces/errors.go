package interfaces

import "errors"

var (
	// ErrProviderAuth is wrapped by gateways when credential exchange fails.
	ErrProviderAuth = errors.New("provider authentication failed")
	// ErrProviderUpstream is wrapped by gateways when the provider API call fails.
	ErrProviderUpstream = errors.New("provider request failed")
	// ErrDuplicateKey is wrapped by repositories on unique constraint violations.
	ErrDuplicateKey = errors.New("duplicate key")
)
