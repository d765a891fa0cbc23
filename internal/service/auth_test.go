package service

import "testing"

func TestAuthLoginAndVerify(t *testing.T) {
	svc := NewAuthService("hunter2", "test-secret")

	token, expires, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
	if expires.IsZero() {
		t.Fatal("Login() returned zero expiry")
	}

	if err := svc.Verify(token); err != nil {
		t.Errorf("Verify() error on fresh token: %v", err)
	}
}

func TestAuthWrongPassword(t *testing.T) {
	svc := NewAuthService("hunter2", "test-secret")
	if _, _, err := svc.Login("wrong"); err != ErrBadCredentials {
		t.Errorf("Login(wrong) error = %v, want ErrBadCredentials", err)
	}
}

func TestAuthVerifyRejectsForeignToken(t *testing.T) {
	issuer := NewAuthService("hunter2", "secret-a")
	verifier := NewAuthService("hunter2", "secret-b")

	token, _, err := issuer.Login("hunter2")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if err := verifier.Verify(token); err != ErrBadToken {
		t.Errorf("Verify(foreign token) error = %v, want ErrBadToken", err)
	}
}

func TestAuthVerifyRejectsGarbage(t *testing.T) {
	svc := NewAuthService("hunter2", "test-secret")
	if err := svc.Verify("not.a.token"); err != ErrBadToken {
		t.Errorf("Verify(garbage) error = %v, want ErrBadToken", err)
	}
}
