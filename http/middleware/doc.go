/*
The middleware package defines what a middleware is in tollgate and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LoadRequest
- LogRequest
- RateLimit
- ReportPanic
- RequestID
- Shape

Shape is how the Rules of package req run over an HTTP request:

	rp := resp.NewResponder(resp.WithLogger(log))
	create := middleware.Shape(
		rp.Err,
		req.CollectValidation(),
		req.BodyMustHave("name"),
		req.ObjectifyRequestData([]string{"name", "id"}, true),
	)

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.ForceHTTPS(env, rp.Err),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.LoadRequest(rp.Err, req.WithMaxBodyBytes(maxBodyBytes)),
	}
*/
package middleware
