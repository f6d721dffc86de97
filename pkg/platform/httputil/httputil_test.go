package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "companyatlas/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})
}

func TestWriteErrorWrappedCause(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, dErrors.Wrap(http.ErrBodyNotAllowed, dErrors.CodeNotFound, "backend not found"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error_description"] != "backend not found" {
		t.Fatalf("expected message without cause, got %q", body["error_description"])
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Country string `json:"country"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"country":"FR"}`))
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Country != "FR" {
		t.Fatalf("expected FR, got %q", dst.Country)
	}

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"country":"FR","extra":1}`))
	err := DecodeJSON(req, &dst)
	if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
		t.Fatalf("expected bad_request for unknown field, got %v", err)
	}
}
