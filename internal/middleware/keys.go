package middleware

// Context keys set by the middleware in this package
const (
	RequestIDKey = "request_id"
	UsernameKey  = "username"
	ClaimsKey    = "claims"
)
