package common

// RequestIDHeaderName is the HTTP header carrying the request correlation id.
const RequestIDHeaderName = "X-Request-ID"
