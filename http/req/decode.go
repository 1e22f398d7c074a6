package req

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/tollgate"
)

type queryParamDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

// decode fills structPtr with params, translating any errors with translateDecoderError.
func (d queryParamDecoder) decode(structPtr any, params url.Values) error {
	v := reflect.ValueOf(structPtr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: must decode into pointer to struct, got %T", tollgate.ErrBadAny, structPtr)
	}

	if err := d.dec.Decode(structPtr, params); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: schema wraps struct-bound errors in a MultiError.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", tollgate.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, tollgate.ErrNotImplemented)

		case schema.UnknownKeyError:
			// NOTE: unknown keys are ignored by newQueryParamDecoder,
			// so this only happens if that changes.
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// NOTE: a field lacking a registered schema.Converter
			// only errors once params sets its key.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", tollgate.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", tollgate.ErrUnexpected, err)
		}
	}

	return validErrs
}
