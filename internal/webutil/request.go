// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"mussar_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody decodes the request body into dst. Unknown fields are
// rejected so typos surface as 400s instead of silently-ignored keys.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON for this endpoint", model.ErrInvalidInput)
	}
	return nil
}

// ValidateStruct runs the shared validator and converts the first failure
// into an AppError with a translated message.
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), model.ErrInvalidInput)
	}
	return err
}
