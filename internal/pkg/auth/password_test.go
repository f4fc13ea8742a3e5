package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal plaintext password")
	}

	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("expected matching password to verify, got %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestBcryptHasherSaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestBcryptHasherRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != defaultCost {
		t.Fatalf("expected default cost %d, got %d", defaultCost, hasher.cost)
	}
	if err := hasher.Compare("not-a-bcrypt-hash", "secret"); err == nil {
		t.Fatal("expected malformed hash to fail comparison")
	}
}
