package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"pms/shared/base64"
	"pms/shared/constant"
	"pms/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	// report fields by their wire name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}

		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	rules := map[string]val.Func{
		"mimetypes":   allowedContentType,
		"maxfilesize": withinFileSize,
		"day":         isDay,
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// contentOf extracts the media type and size of an uploaded file or a base64 data URI.
func contentOf(field val.FieldLevel) (contentType string, size int, ok bool) {
	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return value.Header.Get(constant.RequestHeaderContentType), int(value.Size), true
	case *multipart.FileHeader:
		if value == nil {
			return "", 0, false
		}

		return value.Header.Get(constant.RequestHeaderContentType), int(value.Size), true
	case string:
		return base64.GetContentType(value), base64.DecodedLen(value), true
	default:
		return "", 0, false
	}
}

func allowedContentType(field val.FieldLevel) bool {
	contentType, _, ok := contentOf(field)
	if !ok || contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func withinFileSize(field val.FieldLevel) bool {
	_, size, ok := contentOf(field)
	if !ok {
		return false
	}

	limitMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	const mebibyte = 1 << 20

	return float64(size) <= limitMB*mebibyte
}

// isDay accepts calendar dates in YYYY-MM-DD form.
func isDay(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DayFormat, value)

	return err == nil
}

// Validate decodes JSON from r into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
