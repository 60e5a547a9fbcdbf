// Package apperror berisi taksonomi error domain yang dipakai service dan
// dikonversi ke HTTP response di level handler.
package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// FieldError menandai kesalahan pada satu field input.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError: input wajib kosong / format salah.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func NewValidationError(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// InvalidTransitionError: perubahan status dari kombinasi status/aksi/role
// yang tidak ada di tabel transisi.
type InvalidTransitionError struct {
	From   string
	Action string
	Role   string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("aksi %s tidak diizinkan untuk status %s (role %s)", e.Action, e.From, e.Role)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// CapacityExceededError: undangan tim akan melebihi batas anggota.
type CapacityExceededError struct {
	Max     int
	Current int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("kapasitas tim penuh: %d dari %d slot anggota sudah terpakai", e.Current, e.Max)
}

// ExternalServiceError: panggilan ke layanan luar (GitHub, storage) gagal.
type ExternalServiceError struct {
	Service string
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Message != "" {
		return e.Service + ": " + e.Message
	}
	if e.Err != nil {
		return e.Service + ": " + e.Err.Error()
	}
	return e.Service + ": layanan eksternal gagal"
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// NotFoundError: data tidak ada atau caller tidak berhak melihatnya.
type NotFoundError struct {
	Resource string
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " tidak ditemukan"
}

// ForbiddenError: caller terautentikasi tapi tidak punya hak.
type ForbiddenError struct {
	Message string
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Message: msg}
}

func (e *ForbiddenError) Error() string { return e.Message }

// ConflictError: data duplikat atau status sudah diubah request lain.
type ConflictError struct {
	Message string
}

func NewConflict(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}

func (e *ConflictError) Error() string { return e.Message }

// HTTPStatus memetakan jenis error ke HTTP status code.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		transition *InvalidTransitionError
		capacity   *CapacityExceededError
		external   *ExternalServiceError
		notFound   *NotFoundError
		forbidden  *ForbiddenError
		conflict   *ConflictError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &transition):
		return http.StatusUnprocessableEntity
	case errors.As(err, &capacity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &external):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Details mengembalikan payload "errors" untuk response: daftar field untuk
// ValidationError, selain itu pesan error.
func Details(err error) interface{} {
	var validation *ValidationError
	if errors.As(err, &validation) && len(validation.Fields) > 0 {
		return validation.Fields
	}
	return err.Error()
}
