package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/mitchellh/mapstructure"
	"github.com/xy-planning-network/tollgate"
)

// A Parser binds request data into application structs and validates them.
type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("tollgate/http/req: %w: ParseBody called with non-pointer: %s", tollgate.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("tollgate/http/req: %w: failed decoding request body: %s", tollgate.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("tollgate/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseData decodes the aggregate ObjectifyRequestData builds into a pointer to a struct,
// matching keys by the struct's "json" tags.
// Values are converted loosely, so "12" fills an int field.
// If successful, ParseData runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseData(data Values, structPtr any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           structPtr,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("tollgate/http/req: %w: ParseData called with non-pointer: %s", tollgate.ErrBadAny, err)
	}

	if err := dec.Decode(map[string]any(data)); err != nil {
		return fmt.Errorf("tollgate/http/req: %w: failed decoding request data: %s", tollgate.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("tollgate/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in params.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("tollgate/http/req: failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("tollgate/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
