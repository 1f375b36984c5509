package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == "secret1" {
		t.Error("hash should not equal plaintext password")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	hash1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := CheckPassword(hash, "secret1"); err != nil {
		t.Errorf("expected correct password to match, got error: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("expected error for incorrect password")
	}
	if err := CheckPassword(hash, ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if err := CheckPassword("not-a-valid-bcrypt-hash", "secret1"); err == nil {
		t.Error("expected error for invalid hash format")
	}
}
