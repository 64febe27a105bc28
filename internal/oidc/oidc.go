package oidc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/auth"
)

// Verifier validates ID tokens against a discovered OIDC provider and
// adapts the result to the gateway's auth.Verifier contract.
type Verifier struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the provider at the given issuer and prepares a
// token verifier bound to the client ID (audience).
func NewVerifier(ctx context.Context, issuer, clientID string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: clientID})
	return &Verifier{provider: provider, verifier: verifier}, nil
}

// Verify checks the raw ID token and returns the normalized claims.
// Token-level failures (malformed, expired, wrong audience) map to
// auth.ErrInvalidCredential; transport failures reaching the provider's
// keyset map to auth.ErrVerifier so callers can answer 500 rather than 401.
func (v *Verifier) Verify(ctx context.Context, raw string) (*auth.Claims, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		if isTransportError(err) {
			return nil, auth.VerifierError(err)
		}
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidCredential, err)
	}
	var c struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidCredential, err)
	}
	return &auth.Claims{Subject: idToken.Subject, Email: c.Email}, nil
}

// isTransportError reports whether the verification failure came from
// reaching the provider rather than from the token itself.
func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
