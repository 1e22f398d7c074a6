package req

// A Rule checks or reshapes the data of a *Request.
//
// A Rule returning nil lets the request move on to the next Rule or handler.
// A Rule returning an error stops the request there;
// the error is most often an *Error carrying the status to respond with.
//
// Rules hold only what they were constructed with
// and are safe to share across concurrent requests.
type Rule func(*Request) error
