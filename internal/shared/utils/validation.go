package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shopfloor-inc/shopfloor/internal/shared/errors"
)

// SchemaField collects errors that do not belong to a single field.
const SchemaField = "_schema"

const (
	MsgRequired      = "Missing data for required field."
	MsgNull          = "Field may not be null."
	MsgNotString     = "Not a valid string."
	MsgInvalidEmail  = "Not a valid email address."
	MsgUnknownField  = "Unknown field."
	MsgInvalidInput  = "Invalid input type."
	MsgInvalidValue  = "Invalid value."
	msgMaxLengthTmpl = "Longer than maximum length %s."
)

// init configures gin's validator: JSON tag names in errors, JSONString
// validated as its underlying value, a notblank rule for whitespace-only
// strings, and unknown body fields rejected.
func init() {
	binding.EnableDecoderDisallowUnknownFields = true

	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(jsonFieldName)

	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		s, ok := v.Interface().(JSONString)
		if !ok || !s.Set || s.Null {
			return nil
		}
		return s.Value
	}, JSONString{})

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindJSON decodes and validates the request body into obj. Any failure is
// returned as a field validation AppError.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)

	var validationErrs validator.ValidationErrors
	if err != nil && !stderrors.As(err, &validationErrs) {
		return errors.NewFieldValidationError(decodeErrorFields(err))
	}

	fields := errors.FieldErrors{}
	collectNullFields(obj, fields)
	for _, fe := range validationErrs {
		if _, isNull := fields[fe.Field()]; isNull {
			continue
		}
		fields.Add(fe.Field(), fieldErrorMessage(fe))
	}

	if len(fields) == 0 {
		return nil
	}
	return errors.NewFieldValidationError(fields)
}

// decodeErrorFields maps a JSON decoding failure onto the offending field,
// or onto SchemaField when the body is not a JSON object at all.
func decodeErrorFields(err error) errors.FieldErrors {
	fields := errors.FieldErrors{}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field != "" {
		fields.Add(typeErr.Field, typeErrorMessage(typeErr))
		return fields
	}

	if name, ok := unknownFieldName(err); ok {
		fields.Add(name, MsgUnknownField)
		return fields
	}

	fields.Add(SchemaField, MsgInvalidInput)
	return fields
}

func typeErrorMessage(err *json.UnmarshalTypeError) string {
	if err.Type != nil && err.Type.Kind() == reflect.String {
		return MsgNotString
	}
	return MsgInvalidValue
}

// unknownFieldName extracts the key from encoding/json's
// `json: unknown field "x"` error.
func unknownFieldName(err error) (string, bool) {
	rest, found := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !found {
		return "", false
	}
	name, unquoteErr := strconv.Unquote(rest)
	if unquoteErr != nil {
		return "", false
	}
	return name, true
}

// collectNullFields reports every JSONString field of obj that was sent as
// an explicit null.
func collectNullFields(obj any, fields errors.FieldErrors) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		s, ok := v.Field(i).Interface().(JSONString)
		if !ok || !s.Null {
			continue
		}
		if name := jsonFieldName(t.Field(i)); name != "" {
			fields.Add(name, MsgNull)
		}
	}
}

// fieldErrorMessage returns a user-friendly error message for a field validation error
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "max":
		return fmt.Sprintf(msgMaxLengthTmpl, fe.Param())
	default:
		return MsgInvalidValue
	}
}
