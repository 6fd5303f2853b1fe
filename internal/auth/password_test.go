package auth

import (
	"errors"
	"testing"
)

func TestCompareDummyPasswordAlwaysFails(t *testing.T) {
	for _, plain := range []string{"", "unused-admin-password", "s3cret!"} {
		if err := CompareDummyPassword(plain); !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("CompareDummyPassword(%q) error = %v, want ErrPasswordMismatch", plain, err)
		}
	}
}
