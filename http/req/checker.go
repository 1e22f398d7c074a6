package req

import (
	"fmt"

	v10 "github.com/go-playground/validator/v10"
)

// A Checker collects validation errors for the fields of a *Request.
// CollectValidation installs one on a *Request.
type Checker struct {
	r     *Request
	valid *v10.Validate
	errs  ValidationErrors
}

// A Check marks one field of a *Request for validation.
// Each rule a Check applies records a ValidationError on its Checker
// if the field does not meet it.
type Check struct {
	c     *Checker
	field string
	msg   string
	val   any
	set   bool
}

// CollectValidation installs a *Checker on a *Request
// so later Rules, like BodyMustHave, can record validation errors on it.
// A *Request already carrying a *Checker keeps it.
func CollectValidation() Rule {
	v := newValidator()

	return func(r *Request) error {
		if r.checker == nil {
			r.checker = &Checker{r: r, valid: v.valid}
		}

		return nil
	}
}

// CheckBody marks field in the Body for validation, reporting msg on failure.
func (c *Checker) CheckBody(field, msg string) *Check { return c.check(Body, field, msg) }

// CheckParams marks field in the Params for validation, reporting msg on failure.
func (c *Checker) CheckParams(field, msg string) *Check { return c.check(Params, field, msg) }

// CheckQuery marks field in the Query for validation, reporting msg on failure.
func (c *Checker) CheckQuery(field, msg string) *Check { return c.check(Query, field, msg) }

// Errors returns every ValidationError recorded so far, or nil.
func (c *Checker) Errors() ValidationErrors {
	if len(c.errs) == 0 {
		return nil
	}

	return append(ValidationErrors(nil), c.errs...)
}

func (c *Checker) check(src Source, field, msg string) *Check {
	val, ok := c.r.From(src).Lookup(field)
	return &Check{c: c, field: field, msg: msg, val: val, set: ok}
}

// NotEmpty records a ValidationError if the field is unset or its value prints as "".
func (ch *Check) NotEmpty() *Check {
	var s string
	if ch.set && ch.val != nil {
		s = fmt.Sprint(ch.val)
	}

	if err := ch.c.valid.Var(s, "required"); err != nil {
		ch.fail("required")
	}

	return ch
}

// Is records a ValidationError if the field's value fails tag,
// a rule written in go-playground/validator syntax, such as "email" or "numeric".
// An unset field is checked as nil.
func (ch *Check) Is(tag string) *Check {
	if err := ch.c.valid.Var(ch.val, tag); err != nil {
		ch.fail(tag)
	}

	return ch
}

func (ch *Check) fail(rule string) {
	ch.c.errs = append(ch.c.errs, ValidationError{
		Field:   ch.field,
		Got:     ch.val,
		Rule:    rule,
		Message: ch.msg,
	})
}
