/*
The resp package provides a high-level API for responding to HTTP requests with JSON,
with an easy way to configure the responses application-wide.

Responder.Json writes data under a "data" key.
Responder.Err writes errors, passing along the status and message of a *req.Error
and hiding the details of any other error behind a 500.
*/
package resp
