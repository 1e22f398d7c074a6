package req

import (
	"fmt"
	"slices"

	"github.com/xy-planning-network/tollgate"
)

// BodyMustHave fails with tollgate.ErrNotValid unless every field is set and not empty in the Body.
//
// BodyMustHave records its findings on the *Checker CollectValidation installs,
// and panics if no Rule before it installed one.
func BodyMustHave(fields ...string) Rule {
	return mustHave("BodyMustHave", (*Checker).CheckBody, fields)
}

// QueryMustHave fails with tollgate.ErrNotValid unless every field is set and not empty in the Query.
//
// QueryMustHave records its findings on the *Checker CollectValidation installs,
// and panics if no Rule before it installed one.
func QueryMustHave(fields ...string) Rule {
	return mustHave("QueryMustHave", (*Checker).CheckQuery, fields)
}

func mustHave(name string, check func(*Checker, string, string) *Check, fields []string) Rule {
	fields = slices.Clone(fields)

	return func(r *Request) error {
		c := r.Checker()
		if c == nil {
			panic(fmt.Sprintf("tollgate/http/req: %s requires CollectValidation earlier in the chain", name))
		}

		for _, field := range fields {
			check(c, field, field+" must not be empty").NotEmpty()
		}

		errs := c.Errors()
		if errs == nil {
			return nil
		}

		err := newError(tollgate.ErrNotValid, "Invalid parameter")
		err.Errors = errs
		return err
	}
}
