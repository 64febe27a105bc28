package auth

import (
	"context"
	"errors"
	"fmt"
)

// Claims are the provider-attested facts the gateway cares about. All
// fields come from the verified token, never from client-supplied input.
type Claims struct {
	Subject string
	Email   string
}

// Verifier validates a raw bearer credential against the identity provider
// and returns the verified claims. Implementations classify failures:
// a malformed/expired/forged token must map to ErrInvalidCredential, any
// other failure (network, keyset fetch) to an error wrapping ErrVerifier.
type Verifier interface {
	Verify(ctx context.Context, raw string) (*Claims, error)
}

var (
	// ErrNoCredential: no bearer credential was presented.
	ErrNoCredential = errors.New("no authorization credential provided")
	// ErrInvalidCredential: the provider rejected the credential.
	ErrInvalidCredential = errors.New("invalid authentication credential")
	// ErrUnknownUser: the identity is valid but has no account.
	ErrUnknownUser = errors.New("user not registered")
	// ErrForbidden: the account's role does not permit the operation.
	ErrForbidden = errors.New("insufficient role")
	// ErrVerifier: the provider could not be consulted at all.
	ErrVerifier = errors.New("identity provider unavailable")
)

// VerifierError wraps an underlying provider failure so callers can log the
// cause while still matching ErrVerifier.
func VerifierError(cause error) error {
	return fmt.Errorf("%w: %v", ErrVerifier, cause)
}
