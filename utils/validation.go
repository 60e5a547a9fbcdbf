package utils

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"capstone-backend/app/apperror"
)

// validate instance bersama untuk validasi nilai tunggal di luar binding gin.
var validate = validator.New()

// IsHTTPURL url absolut dengan skema http/https dan host.
func IsHTTPURL(raw string) bool {
	return validate.Var(strings.TrimSpace(raw), "required,http_url") == nil
}

// BindError mengubah error dari ShouldBindJSON / ShouldBind menjadi
// *apperror.ValidationError dengan daftar field yang gagal.
func BindError(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]apperror.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, apperror.FieldError{
				Field: lowerFirst(fe.Field()),
				Error: tagMessage(fe),
			})
		}
		return apperror.NewValidationError("input tidak valid", fields...)
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return apperror.NewValidationError("input tidak valid", apperror.FieldError{
			Field: ute.Field,
			Error: "tipe data salah",
		})
	}

	return apperror.NewValidationError("input tidak valid: " + err.Error())
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email salah"
	case "min":
		return "minimal " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "url", "http_url":
		return "format url salah"
	case "uuid":
		return "harus uuid"
	}
	return fe.Tag()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
