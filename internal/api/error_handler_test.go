package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medsupply/inventory-api/internal/core/domain"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrInvalidPassword, http.StatusBadRequest},
		{domain.ErrInvalidUserData, http.StatusBadRequest},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrInvalidCategory, http.StatusBadRequest},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{errors.New("database exploded"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", domain.ErrProductNotFound), http.StatusNotFound},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		c, rec := newErrorContext(t)
		handler(tc.err, c)
		if rec.Code != tc.wantCode {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}

		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: decode body: %v", tc.err, err)
		}
		if body.Error == "" {
			t.Errorf("%v: expected error message in body", tc.err)
		}
	}
}

func TestHTTPErrorHandler_InternalErrorIsGeneric(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorContext(t)
	handler(errors.New("connection string with password"), c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details leaked: %q", body.Error)
	}
}

func TestHTTPErrorHandler_InsufficientStock(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorContext(t)
	handler(&domain.InsufficientStockError{Available: 7}, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body insufficientStockResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AvailableStock != 7 {
		t.Fatalf("expected available_stock 7, got %d", body.AvailableStock)
	}
	if body.Error == "" {
		t.Fatalf("expected error message in body")
	}
}
