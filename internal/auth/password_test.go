package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "hunter2") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("wrong password must not verify")
	}
	if CheckPassword("", "hunter2") {
		t.Error("empty hash must not verify")
	}
}
