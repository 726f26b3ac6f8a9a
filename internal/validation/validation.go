// Package validation checks request payloads against the fixed API schemas
// before any business logic runs.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heygogu/car-rental/internal/models"
)

// ErrValidation оборачивает любую ошибку формы или схемы запроса.
var ErrValidation = fmt.Errorf("validation error: %w", models.ErrInvalidInput)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Postgres не хранит NUL в text-колонках.
		_ = validate.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
			return !strings.ContainsRune(fl.Field().String(), 0)
		})
	})
	return validate
}

// DecodeJSON strictly decodes a single JSON object from r into dst and validates it.
// Unknown keys, explicit nulls, trailing data, type mismatches and schema
// violations all wrap ErrValidation.
func DecodeJSON(r io.Reader, dst interface{}) error {
	if r == nil {
		return fmt.Errorf("%w: empty body", ErrValidation)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := rejectNulls(body); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	// Проверяем, что после объекта нет мусора (например, второго объекта).
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrValidation)
	}

	return Struct(dst)
}

// rejectNulls fails on any top-level key set to null. encoding/json leaves the
// target untouched for null, which would make {"days":null} look like an
// omitted field.
func rejectNulls(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// Синтаксис разберёт строгий декодер ниже.
		return nil
	}
	for key, raw := range fields {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: %s must not be null", ErrValidation, key)
		}
	}
	return nil
}

// DecodeBytes is DecodeJSON over an in-memory body.
func DecodeBytes(body []byte, dst interface{}) error {
	return DecodeJSON(bytes.NewReader(body), dst)
}

// Struct validates v against its `validate` tags.
func Struct(v interface{}) error {
	if err := instance().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// FieldErrors returns the names of the fields that failed, for logging only.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}
	return fields
}
