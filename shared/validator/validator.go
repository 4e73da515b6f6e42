// Package validator decodes request bodies and validates them with
// go-playground/validator. Failures come back as 400 failures whose message
// names the first offending field by its JSON name.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/ordering"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

var (
	validate = newValidate()

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	rules := map[string]val.Func{
		"mimetypes":   mimetypes,
		"maxfilesize": maxFileSize,
		"slug":        slug,
		"itemtype":    itemType,
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

func fileHeader(field val.FieldLevel) (*multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return &file, true
	case *multipart.FileHeader:
		return file, file != nil
	default:
		return nil, false
	}
}

// mimetypes accepts an uploaded file or a base64 data URI whose media type
// is one of the space separated params.
func mimetypes(field val.FieldLevel) bool {
	var contentType string

	if file, ok := fileHeader(field); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if uri, ok := field.Field().Interface().(string); ok {
		contentType = dataURIContentType(uri)
	}

	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// dataURIContentType extracts the media type of a data:<type>;base64, URI.
func dataURIContentType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ""
	}

	contentType, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ""
	}

	return contentType
}

// maxFileSize bounds a file or data URI to param megabytes.
func maxFileSize(field val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	var size int64
	if file, ok := fileHeader(field); ok {
		size = file.Size
	} else if uri, ok := field.Field().Interface().(string); ok {
		size = int64(len(uri))
	}

	return float64(size) <= limit*megabyte
}

func slug(field val.FieldLevel) bool {
	return slugPattern.MatchString(field.Field().String())
}

func itemType(field val.FieldLevel) bool {
	switch ordering.ItemType(field.Field().String()) {
	case ordering.ItemTypeExisting, ordering.ItemTypeNew:
		return true
	default:
		return false
	}
}

// Validate decodes a JSON body into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is empty") //nolint:wrapcheck
		}

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
