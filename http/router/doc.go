/*
Package router routes HTTP requests to their handlers with gorilla/mux.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear,
followed by the Rules of package req set on the Route.

It is often the case that many routes for a web server share identical middleware stacks.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes.
*/
package router
