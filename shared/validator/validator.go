package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"resort/shared/constant"
	"resort/shared/failure"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMegabyte = 1 << 20

var (
	validate     *val.Validate
	validateOnce sync.Once
)

var rules = map[string]val.Func{
	"mimetypes":   validMimetype,
	"maxfilesize": validFileSize,
	"date":        validDate,
}

func instance() *val.Validate {
	validateOnce.Do(func() {
		validate = val.New(val.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)

		for tag, rule := range rules {
			if err := validate.RegisterValidation(tag, rule); err != nil {
				panic(fmt.Sprintf("register %s validation: %v", tag, err))
			}
		}
	})

	return validate
}

// jsonName reports fields under their wire names so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	default:
		return name
	}
}

func fileHeader(field val.FieldLevel) (multipart.FileHeader, bool) {
	switch header := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return header, true
	case *multipart.FileHeader:
		if header != nil {
			return *header, true
		}
	}

	return multipart.FileHeader{}, false
}

// validMimetype checks the part Content-Type against a space separated allow list.
func validMimetype(field val.FieldLevel) bool {
	header, ok := fileHeader(field)
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), header.Header.Get(constant.RequestHeaderContentType))
}

// validFileSize takes its limit in megabytes.
func validFileSize(field val.FieldLevel) bool {
	header, ok := fileHeader(field)
	if !ok {
		return false
	}

	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(header.Size) <= limit*bytesPerMegabyte
}

// validDate accepts calendar dates in the booking wire format.
func validDate(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

// Validate decodes a JSON body into data and validates it. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := instance().Struct(data); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}
