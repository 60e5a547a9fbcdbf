package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: NewValidationError("input tidak valid"), want: http.StatusBadRequest},
		{name: "transition", err: &InvalidTransitionError{From: "DRAFT", Action: "APPROVE", Role: "ADMIN"}, want: http.StatusUnprocessableEntity},
		{name: "capacity", err: &CapacityExceededError{Max: 3, Current: 3}, want: http.StatusUnprocessableEntity},
		{name: "not found", err: NewNotFound("project"), want: http.StatusNotFound},
		{name: "forbidden", err: NewForbidden("bukan ketua tim"), want: http.StatusForbidden},
		{name: "conflict", err: NewConflict("status sudah berubah"), want: http.StatusConflict},
		{name: "external", err: &ExternalServiceError{Service: "github", Message: "boom"}, want: http.StatusBadGateway},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", NewNotFound("rubrik")), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("db down"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestDetails(t *testing.T) {
	err := NewValidationError("input tidak valid", FieldError{Field: "name", Error: "wajib diisi"})
	assert.Equal(t, []FieldError{{Field: "name", Error: "wajib diisi"}}, Details(err))
	assert.Equal(t, "input tidak valid (name: wajib diisi)", err.Error())

	assert.Equal(t, "project tidak ditemukan", Details(NewNotFound("project")))
}

func TestExternalServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("502 bad gateway")
	err := &ExternalServiceError{Service: "github", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "github: 502 bad gateway", err.Error())
}
