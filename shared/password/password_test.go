package password_test

import (
	"errors"
	"testing"

	"apelcal/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("super-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "super-secret" {
		t.Error("hash must not equal the clear text")
	}

	if err := password.Verify("super-secret", hash); err != nil {
		t.Errorf("expected correct password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestVerify_EmptyArguments(t *testing.T) {
	if err := password.Verify("", "some-hash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("some-password", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}

func TestHash_ProducesUniqueSalts(t *testing.T) {
	first, err := password.Hash("super-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("super-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}
