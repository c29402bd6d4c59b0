package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		e := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
	})

	t.Run("wrapped cause stays out of the body", func(t *testing.T) {
		cause := errors.New("dynamodb: throttled")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if !strings.Contains(e.Error(), "throttled") {
			t.Fatalf("expected cause in error string: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || strings.Contains(body.Message, "throttled") {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
