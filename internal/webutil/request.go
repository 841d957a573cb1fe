package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"go_5_vocab_path/internal/middleware"
	"go_5_vocab_path/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Warn("Error decoding JSON body", "error", err)
		return model.ErrInvalidInput
	}
	return nil
}

// DecodeAndValidate はデコードとバリデーションをまとめて行います
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_INPUT", "リクエストボディが不正です。", "", err)
	}
	if err := Validator.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return NewValidationErrorResponse(validationErrs)
		}
		return model.NewAppError("INVALID_INPUT", "リクエストボディが不正です。", "", model.ErrInvalidInput)
	}
	return nil
}
