package auth

import "testing"

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "securepassword123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Verify(hash, "securepassword123") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("expected wrong password to fail")
	}
}

func TestPasswordServiceImpl_HashIsSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	second, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if first == second {
		t.Error("expected distinct salts to produce distinct hashes")
	}
}
