package utils

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-backend/app/apperror"
)

func TestBindError_ValidatorFields(t *testing.T) {
	type input struct {
		Title    string `validate:"required"`
		Email    string `validate:"required,email"`
		BobotMax int    `validate:"min=1,max=100"`
	}
	err := validator.New().Struct(input{Email: "bukan-email", BobotMax: 150})
	require.Error(t, err)

	got := BindError(err)
	var ve *apperror.ValidationError
	require.ErrorAs(t, got, &ve)
	assert.ElementsMatch(t, []apperror.FieldError{
		{Field: "title", Error: "wajib diisi"},
		{Field: "email", Error: "format email salah"},
		{Field: "bobotMax", Error: "maksimal 100"},
	}, ve.Fields)
}

func TestBindError_TypeMismatch(t *testing.T) {
	var dst struct {
		Score float64 `json:"score"`
	}
	err := json.Unmarshal([]byte(`{"score":"sepuluh"}`), &dst)
	require.Error(t, err)

	var ve *apperror.ValidationError
	require.ErrorAs(t, BindError(err), &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "score", ve.Fields[0].Field)
}

func TestBindError_Other(t *testing.T) {
	assert.Nil(t, BindError(nil))

	var ve *apperror.ValidationError
	assert.ErrorAs(t, BindError(errors.New("EOF")), &ve)
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://app.example.com", true},
		{"http://10.0.0.5:8080/health", true},
		{"  https://app.example.com/  ", true},
		{"ftp://files.example.com", false},
		{"https://", false},
		{"app.example.com", false},
		{"", false},
		{"javascript:alert(1)", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTTPURL(tt.raw))
		})
	}
}
