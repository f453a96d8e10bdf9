package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPassword("s3cret", hash) {
		t.Error("expected hash to verify against the original password")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ (salt)")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords over 72 bytes
	_, err := HashPassword(strings.Repeat("a", 100))
	if err == nil {
		t.Error("expected error for over-long password, got nil")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CheckPassword("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("expected invalid hash to fail verification")
	}
}
