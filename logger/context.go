package logger

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"runtime"
)

const callerTmpl = "%s:%d"

var (
	_ encoding.TextMarshaler = LogContext{}
)

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// MaskedKeys lists the form and JSON body keys whose values
// are replaced with MaskVal when a LogContext renders its Request.
var MaskedKeys = []string{"password", "token"}

// MaskVal stands in for the value of every key in MaskedKeys.
const MaskVal = "xxxxxx"

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		m["request"] = requestText(lc.Request)
	}

	return json.Marshal(m)
}

// requestText picks the parts of r worth logging.
// A JSON object body is read, masked and put back so later readers still see it.
func requestText(r *http.Request) map[string]any {
	out := map[string]any{
		"method": r.Method,
		"url":    r.URL.String(),
		"header": r.Header,
	}

	if r.Form != nil {
		form := make(url.Values, len(r.Form))
		for k, v := range r.Form {
			form[k] = v
		}
		for _, k := range MaskedKeys {
			if _, ok := form[k]; ok {
				form[k] = []string{MaskVal}
			}
		}
		out["form"] = form
	}

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "application/json" || r.Body == nil || r.Body == http.NoBody {
		return out
	}

	b, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return out
	}

	body := make(map[string]any)
	if err := json.Unmarshal(b, &body); err != nil {
		return out
	}

	for _, k := range MaskedKeys {
		if _, ok := body[k]; ok {
			body[k] = MaskVal
		}
	}
	out["json"] = body

	return out
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() { 		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return callSite(file, line)
}
