/*
Package req shapes and checks the data an HTTP request carries before a handler sees it.

Load splits an *http.Request into three Sources: the Body, the Query and the Params
gorilla/mux extracts from the path.
A Rule is a step over the resulting *Request.
Rules run in order; the first Rule returning an error stops the rest.

ObjectifyRequestData gathers named fields from every Source into one aggregate,
failing when a field is set in more than one Source
or, when required, set in none.
The remaining Rules check or rewrite single fields:

	BodyMustHave, QueryMustHave  presence, reported through a *Checker
	Escape                       regular expression escaping
	ToInts                       base-10 integer conversion
	InList                       comma-separated set membership
	InRange                      inclusive numeric bounds

Every failure is an *Error with a 400 status,
wrapping one of the tollgate sentinel errors so callers can use errors.Is.

A Parser binds a JSON body, query params or the aggregate itself into a struct
and validates it with "validate" struct tags.
*/
package req
