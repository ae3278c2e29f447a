package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFoundf("employee %s not found", "x")); got != KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", got)
	}
	if got := KindOf(Validationf("email is required")); got != KindValidation {
		t.Fatalf("expected KindValidation, got %v", got)
	}
	if got := KindOf(Conflictf("email already in use")); got != KindConflict {
		t.Fatalf("expected KindConflict, got %v", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Fatalf("expected KindUnknown for plain error, got %v", got)
	}
}

func TestKindOfWrappedError(t *testing.T) {
	inner := NotFoundf("record missing")
	wrapped := fmt.Errorf("load failed: %w", inner)

	if !IsNotFound(wrapped) {
		t.Fatal("expected wrapped error to keep its kind")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, "save failed")

	if KindOf(err) != KindUnknown {
		t.Fatalf("expected KindUnknown, got %v", KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to survive wrapping")
	}
	if err.Error() != "save failed" {
		t.Fatalf("expected wrap message, got %q", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHTTPStatusAndCode(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NotFoundf("missing"), http.StatusNotFound, "not_found"},
		{Validationf("bad input"), http.StatusBadRequest, "validation_error"},
		{Conflictf("duplicate"), http.StatusConflict, "conflict"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.status {
			t.Fatalf("HTTPStatus(%v): expected %d, got %d", tc.err, tc.status, got)
		}
		if got := Code(tc.err); got != tc.code {
			t.Fatalf("Code(%v): expected %q, got %q", tc.err, tc.code, got)
		}
	}
}
