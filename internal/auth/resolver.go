package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/users"
)

// Resolver turns a raw Authorization header into a resolved account: it
// parses the bearer credential, verifies it with the provider and loads the
// matching user document. Every protected route runs this once per request;
// there is no caching between calls.
type Resolver struct {
	verifier Verifier
	users    *users.Service
}

func NewResolver(v Verifier, u *users.Service) *Resolver {
	return &Resolver{verifier: v, users: u}
}

// Resolve returns the account for the given Authorization header value.
// Failures are reported through the package error taxonomy:
// ErrNoCredential, ErrInvalidCredential, ErrUnknownUser, or an error
// wrapping ErrVerifier. Store failures are returned as-is.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (*models.User, error) {
	raw, err := BearerCredential(authorization)
	if err != nil {
		return nil, err
	}
	claims, err := r.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrInvalidCredential
	}
	u, err := r.users.GetBySub(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnknownUser
	}
	return u, nil
}

// BearerCredential extracts the credential from an Authorization header
// value. The scheme comparison is case-insensitive per RFC 7235.
func BearerCredential(authorization string) (string, error) {
	if authorization == "" {
		return "", ErrNoCredential
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("%w: expected Bearer scheme", ErrInvalidCredential)
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", ErrNoCredential
	}
	return raw, nil
}
