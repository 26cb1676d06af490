package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("administration")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "administration" {
		t.Fatal("password stored in plain text")
	}
	if !VerifyPassword(hash, "administration") {
		t.Error("valid password rejected")
	}
	if VerifyPassword(hash, "admin") {
		t.Error("invalid password accepted")
	}
	if VerifyPassword("not-a-hash", "administration") {
		t.Error("garbage hash accepted")
	}
}
