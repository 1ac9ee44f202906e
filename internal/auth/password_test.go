package auth

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/spec-kit/places-service/pkg/util"
)

const testBcryptCost = 4 // min cost keeps the suite fast

func TestHashAndCompare_Roundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple", testBcryptCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !ComparePassword(hash, "correct horse battery staple") {
		t.Fatal("expected match for the original password")
	}
	if ComparePassword(hash, "correct horse battery stapl") {
		t.Fatal("expected mismatch for a different password")
	}
}

func TestHashPassword_Unsalted_NotDeterministic(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("s3cret", testBcryptCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("s3cret", testBcryptCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ (salted)")
	}
	if !ComparePassword(first, "s3cret") || !ComparePassword(second, "s3cret") {
		t.Fatal("both hashes must verify against the password")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("", testBcryptCost)
	if err == nil {
		t.Fatal("expected error for empty password")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Kind != apperrors.KindBadRequest {
		t.Fatalf("expected KindBadRequest, got %s", domainErr.Kind)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	// bcrypt only reads the first 72 bytes; anything past that is rejected as
	// bad input, not an internal failure.
	_, err := HashPassword(strings.Repeat("a", 80), testBcryptCost)
	if err == nil {
		t.Fatal("expected error for over-long password")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Kind != apperrors.KindBadRequest {
		t.Fatalf("expected KindBadRequest, got %s", domainErr.Kind)
	}

	hash, err := HashPassword(strings.Repeat("a", 72), testBcryptCost)
	if err != nil {
		t.Fatalf("72-byte password must hash: %v", err)
	}
	if !ComparePassword(hash, strings.Repeat("a", 72)) {
		t.Fatal("expected match for the 72-byte password")
	}
}

func TestComparePassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if ComparePassword("not-a-bcrypt-hash", "anything") {
		t.Fatal("expected mismatch for invalid hash")
	}
}
