package service

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldErrors carries per-field validation messages to the HTTP layer, which
// renders them under an "errors" key so forms can highlight each input.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(e[k])
	}
	return b.String()
}

// AsFieldErrors unwraps err into FieldErrors if it carries any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// fieldErrors flattens an ozzo validation result into FieldErrors. A nil err
// passes through so callers can return it directly.
func fieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := FieldErrors{}
	for field, ferr := range verrs {
		fe[field] = ferr.Error()
	}
	return fe
}
