package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestJWTGenerateAndParse(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("super-secret"), TTL: time.Hour}

	tok, exp, err := m.Generate(42, "alice", "a@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Email != "a@x.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestJWTParseExpired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -time.Second}
	tok, _, err := m.Generate(1, "u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTParseWrongSecret(t *testing.T) {
	t.Parallel()

	signer := &JWTManager{Secret: []byte("right-secret"), TTL: time.Hour}
	verifier := &JWTManager{Secret: []byte("wrong-secret"), TTL: time.Hour}

	tok, _, err := signer.Generate(2, "u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = verifier.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTParseMalformed(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	if _, err := m.Parse("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}
