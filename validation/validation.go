// Package validation checks request bodies against the struct-tag schemas declared on
// the DTOs and turns failures into apperror.ValidationError values with per-field details.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/taskflow-go/apperror"
)

// IncorrectInputs is the message every validation failure carries.
const IncorrectInputs = "Incorrect inputs"

// maxBodyBytes caps how much of a request body is decoded.
const maxBodyBytes = 1 << 20

// validate is safe for concurrent use and caches struct metadata, so one instance serves the process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so clients see `dueDate`, not `DueDate`.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a nil or non-struct was passed in, which is a bug upstream.
		return apperror.NewInternalError("validation failed", err)
	}

	details := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperror.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperror.NewValidationError(IncorrectInputs, details)
}

// Normalizer is implemented by request bodies that canonicalize their fields
// (trimming, lowercasing) before the `validate` tags are checked.
type Normalizer interface {
	Normalize()
}

// DecodeJSON reads the request body into dst, normalizes it and validates it.
// The body must hold exactly one JSON value.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return bodyError(decodeMessage(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return bodyError("request body must contain a single JSON object")
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return Struct(dst)
}

func bodyError(msg string) error {
	return apperror.NewValidationError(IncorrectInputs, []apperror.FieldError{{Field: "body", Message: msg}})
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	default:
		return "request body is not valid JSON"
	}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
