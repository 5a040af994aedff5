package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash equals plaintext")
	}
	if !CheckPasswordHash("password123", hash) {
		t.Fatalf("expected match")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected mismatch")
	}
}
