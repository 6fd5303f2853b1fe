package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret-s", time.Hour)
	identities := []Identity{
		{ID: "a1", Email: "owner@shop.test", Role: domain.AdminRoleSuperAdmin},
		{ID: "b2", Email: "staff@shop.test", Role: domain.AdminRoleAdmin},
	}

	for _, want := range identities {
		token, exp, err := tm.Issue(want)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if !exp.After(time.Now()) {
			t.Errorf("Issue() expiry %v not in the future", exp)
		}

		claims, err := tm.Verify(token)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if got := claims.Identity(); got != want {
			t.Errorf("Verify() identity = %+v, want %+v", got, want)
		}
		if claims.ID == "" {
			t.Error("Verify() claims missing token id")
		}
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(Identity{ID: "1", Email: "a@b.com", Role: domain.AdminRoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Verify() error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenManager("secret", time.Minute).WithClock(fixedClock(issuedAt))
	token, _, err := issuer.Issue(Identity{ID: "1", Email: "a@b.com", Role: domain.AdminRoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	later := fixedClock(issuedAt.Add(2 * time.Minute))

	t.Run("valid signature", func(t *testing.T) {
		tm := NewTokenManager("secret", time.Minute).WithClock(later)
		if _, err := tm.Verify(token); !errors.Is(err, ErrExpired) {
			t.Errorf("Verify() error = %v, want ErrExpired", err)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		tm := NewTokenManager("other-secret", time.Minute).WithClock(later)
		if _, err := tm.Verify(token); !errors.Is(err, ErrExpired) {
			t.Errorf("Verify() error = %v, want ErrExpired", err)
		}
	})

	t.Run("exactly at expiry", func(t *testing.T) {
		tm := NewTokenManager("secret", time.Minute).WithClock(fixedClock(issuedAt.Add(time.Minute)))
		if _, err := tm.Verify(token); !errors.Is(err, ErrExpired) {
			t.Errorf("Verify() error = %v, want ErrExpired", err)
		}
	})
}

func TestVerifyTamperedPayload(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Issue(Identity{ID: "1", Email: "a@b.com", Role: domain.AdminRoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other, _, err := tm.Issue(Identity{ID: "2", Email: "root@b.com", Role: domain.AdminRoleSuperAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	forged := strings.Join([]string{parts[0], otherParts[1], parts[2]}, ".")

	if _, err := tm.Verify(forged); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Verify() error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Verify(token); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q) error = %v, want ErrMalformed", token, err)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := ComparePassword(hash, "correct horse"); err != nil {
		t.Errorf("ComparePassword() error = %v, want nil", err)
	}
	if err := ComparePassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("ComparePassword() error = %v, want ErrPasswordMismatch", err)
	}
}
