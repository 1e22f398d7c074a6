package req

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xy-planning-network/tollgate"
)

// AllData is the name Args accepts to stand for the whole aggregate.
const AllData = "*"

// A Source is one of the places an HTTP request carries ad-hoc data.
type Source string

const (
	Body   Source = "body"
	Query  Source = "query"
	Params Source = "params"
)

var sourceOrder = [...]Source{Body, Query, Params}

// Sources lists every Source in the order fields are looked up in:
// Body, then Query, then Params.
func Sources() []Source { return slices.Clone(sourceOrder[:]) }

var _ tollgate.Enumerable = Body

func (s Source) String() string { return string(s) }

func (s Source) Valid() error {
	switch s {
	case Body, Query, Params:
		return nil
	default:
		return tollgate.ErrNotValid
	}
}

// Values maps field names to the data a Source carries for them.
type Values map[string]any

// Lookup returns the value set for key and whether key is set at all.
//
// A key holding a zero value, such as "" or 0 or nil, is still set.
func (v Values) Lookup(key string) (any, bool) {
	val, ok := v[key]
	return val, ok
}

// A Request is the data an HTTP request carries,
// split by Source, along with the aggregate built from it.
type Request struct {
	Body   Values
	Query  Values
	Params Values

	// Data is the aggregate ObjectifyRequestData builds.
	// Data is nil until then.
	Data Values

	checker *Checker
}

// NewRequest constructs a *Request from the values of each Source.
// A nil Values is replaced with an empty one.
func NewRequest(body, query, params Values) *Request {
	if body == nil {
		body = make(Values)
	}

	if query == nil {
		query = make(Values)
	}

	if params == nil {
		params = make(Values)
	}

	return &Request{Body: body, Query: query, Params: params}
}

// From returns the Values for src or nil if src is unknown.
func (r *Request) From(src Source) Values {
	switch src {
	case Body:
		return r.Body
	case Query:
		return r.Query
	case Params:
		return r.Params
	default:
		return nil
	}
}

// Checker returns the *Checker CollectValidation installed, or nil.
func (r *Request) Checker() *Checker { return r.checker }

// Resolve finds the value at a dotted path such as "query.num1" or "body.filter.tags".
//
// The first segment names the Source.
// The second must be a key set in that Source.
// Any remaining segments walk into the value found there,
// matching object keys literally and indexing arrays by number.
func (r *Request) Resolve(path string) (any, bool) {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) < 2 {
		return nil, false
	}

	vals := r.From(Source(parts[0]))
	if vals == nil {
		return nil, false
	}

	val, ok := vals.Lookup(parts[1])
	if !ok {
		return nil, false
	}

	if len(parts) == 2 {
		return val, true
	}

	b, err := json.Marshal(val)
	if err != nil {
		return nil, false
	}

	res := gjson.GetBytes(b, literalPath(parts[2]))
	if !res.Exists() {
		return nil, false
	}

	return res.Value(), true
}

// gjsonSyntax holds the characters gjson reads as wildcards, queries or modifiers.
const gjsonSyntax = `\*?#|@!=<>%()[]{},:"`

// literalPath escapes every gjson syntax character in path, except the dots between segments.
func literalPath(path string) string {
	if !strings.ContainsAny(path, gjsonSyntax) {
		return path
	}

	var b strings.Builder
	for _, c := range path {
		if strings.ContainsRune(gjsonSyntax, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}

	return b.String()
}

// Args lists values from the aggregate in the order of names,
// for handing positionally to a handler.
// AllData stands for the whole aggregate.
// A name missing from the aggregate lists nil.
func (r *Request) Args(names ...string) []any {
	args := make([]any, 0, len(names))
	for _, name := range names {
		if name == AllData {
			args = append(args, r.Data)
			continue
		}

		args = append(args, r.Data[name])
	}

	return args
}

// NewContext stashes r in ctx.
func NewContext(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, tollgate.RequestDataKey, r)
}

// FromContext retrieves the *Request stashed in ctx.
func FromContext(ctx context.Context) (*Request, bool) {
	r, ok := ctx.Value(tollgate.RequestDataKey).(*Request)
	return r, ok && r != nil
}
