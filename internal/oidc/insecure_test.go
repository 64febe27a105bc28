package oidc

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/auth"
)

func unsignedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	return tok
}

func TestInsecureVerifier_ParsesClaims(t *testing.T) {
	v := NewInsecureVerifier()
	raw := unsignedToken(t, jwt.MapClaims{"sub": "uid-42", "email": "u@example.com"})

	claims, err := v.Verify(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "uid-42" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "u@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
}

func TestInsecureVerifier_MissingSub(t *testing.T) {
	v := NewInsecureVerifier()
	raw := unsignedToken(t, jwt.MapClaims{"email": "u@example.com"})

	_, err := v.Verify(context.Background(), raw)
	if !errors.Is(err, auth.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got: %v", err)
	}
}

func TestInsecureVerifier_Malformed(t *testing.T) {
	v := NewInsecureVerifier()
	_, err := v.Verify(context.Background(), "not.a.jwt")
	if !errors.Is(err, auth.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got: %v", err)
	}
}
