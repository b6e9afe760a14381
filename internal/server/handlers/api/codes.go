package api

const (
	CodeNotFound         = "E_NOT_FOUND"          // no route matches the request path
	CodeMethodNotAllowed = "E_METHOD_NOT_ALLOWED" // route exists, method does not
	CodeRateLimited      = "E_RATE_LIMITED"       // rate limit exceeded
	CodeInternalError    = "E_INTERNAL_ERROR"     // internal server error
)
