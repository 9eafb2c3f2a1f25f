package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if digest == "admin123" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected a bcrypt digest, got %q", digest)
	}

	if !VerifyPassword("admin123", digest) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("admin124", digest) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("", digest) {
		t.Fatal("empty password accepted")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if VerifyPassword("whatever", "not-a-bcrypt-digest") {
		t.Fatal("malformed digest accepted")
	}
	if VerifyPassword("whatever", "") {
		t.Fatal("empty digest accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
	if !VerifyPassword("same-password", a) || !VerifyPassword("same-password", b) {
		t.Fatal("both digests must verify")
	}
}
