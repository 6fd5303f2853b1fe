package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"domain error passes through", NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"wrapped domain error", fmt.Errorf("ctx: %w", NewUnauthorized("no")), "UNAUTHORIZED", http.StatusUnauthorized},
		{"no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"generic", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Errorf("ToDomainError() = %s/%d, want %s/%d", got.Code, got.HTTPStatus, tc.code, tc.status)
			}
		})
	}

	if ToDomainError(nil) != nil {
		t.Error("ToDomainError(nil) should be nil")
	}
}

func TestStoreError(t *testing.T) {
	notFound := ToDomainError(StoreError("order", pgx.ErrNoRows))
	if notFound.Code != "NOT_FOUND" || notFound.Message != "order not found" {
		t.Errorf("StoreError(no rows) = %s %q", notFound.Code, notFound.Message)
	}

	cause := errors.New("connection reset")
	upstream := StoreError("order", cause)
	if ToDomainError(upstream).Code != "UPSTREAM_FAILED" {
		t.Errorf("StoreError(generic) code = %s, want UPSTREAM_FAILED", ToDomainError(upstream).Code)
	}
	if !errors.Is(upstream, cause) {
		t.Error("StoreError should keep the cause in the chain")
	}
}

func TestStoreErrorMalformedValue(t *testing.T) {
	err := fmt.Errorf("query order: %w", &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`})
	got := ToDomainError(StoreError("order", err))
	if got.Code != "VALIDATION_FAILED" || got.HTTPStatus != http.StatusBadRequest {
		t.Errorf("StoreError(22P02) = %s/%d, want VALIDATION_FAILED/400", got.Code, got.HTTPStatus)
	}

	other := ToDomainError(StoreError("order", &pgconn.PgError{Code: "57P01"}))
	if other.Code != "UPSTREAM_FAILED" {
		t.Errorf("StoreError(57P01) code = %s, want UPSTREAM_FAILED", other.Code)
	}
}
