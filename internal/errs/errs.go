// Package errs defines the error types handlers return to the HTTP layer.
//
// Every client-facing failure is an *HTTPError. The global error handler
// renders it either as its plain message or as a JSON envelope, so clients
// always receive a consistent, actionable message.
package errs
