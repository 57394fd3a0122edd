package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{E(KindInvalidInput, "bad"), http.StatusBadRequest},
		{E(KindUnauthorized, "who"), http.StatusUnauthorized},
		{E(KindForbidden, "no"), http.StatusForbidden},
		{E(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{E(KindNotFound, "gone"), http.StatusNotFound},
		{E(KindUnknown, "eh"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handling request: %w", E(KindForbidden, "viewers cannot edit"))
	if got := HTTPStatus(wrapped); got != http.StatusForbidden {
		t.Fatalf("HTTPStatus(wrapped) = %d, want 403", got)
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	if got := E(KindForbidden, "").Error(); got != "forbidden" {
		t.Fatalf("Error() = %q", got)
	}
	if got := E(KindForbidden, "viewers cannot edit").Error(); got != "viewers cannot edit" {
		t.Fatalf("Error() = %q", got)
	}
}
