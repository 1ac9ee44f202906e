package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, expiresAt, err := tm.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	identity, err := tm.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if identity.SubjectID != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", identity.SubjectID, "user-123")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	tm := NewTokenManager(secret, time.Hour)
	if _, err := tm.VerifyToken(tok); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	tok, _, err := tm.GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Flip one byte of the signature segment.
	tampered := []byte(tok)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := tm.VerifyToken(string(tampered)); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret", time.Hour).GenerateToken("u3")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", time.Hour).VerifyToken(tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.VerifyToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyToken_EmptySubject(t *testing.T) {
	t.Parallel()

	secret := "k"
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewTokenManager(secret, time.Hour).VerifyToken(tok); err == nil {
		t.Fatal("expected error for missing subject")
	}
}
