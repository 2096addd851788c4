package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService("test-secret", zerolog.Nop())

	token, err := svc.IssueToken("a@x.com", "Alice")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Name != "Alice" {
		t.Errorf("name = %q, want %q", claims.Name, "Alice")
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 59*time.Minute || remaining > time.Hour {
		t.Errorf("token lifetime = %v, want about 1h", remaining)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewAuthService("secret-one", zerolog.Nop())
	verifier := NewAuthService("secret-two", zerolog.Nop())

	token, err := issuer.IssueToken("a@x.com", "")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatal("expected verification to fail for a token signed with another secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	svc := NewAuthService(secret, zerolog.Nop())

	claims := &IdentityClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := NewAuthService("test-secret", zerolog.Nop())

	if _, err := svc.VerifyToken("not-a-token"); err == nil {
		t.Fatal("expected verification to fail for garbage input")
	}
}
