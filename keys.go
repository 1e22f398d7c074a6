package tollgate

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by tollgate.
	IpAddrKey Key = "IpAddrKey"

	// RequestDataKey stashes the *req.Request holding the body, query and params
	// of an HTTP request, along with its aggregate data.
	RequestDataKey Key = "RequestDataKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "tollgate context key: " + string(k)
}
