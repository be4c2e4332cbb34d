// Package handler is the HTTP entry point for business logic after the
// router.
//
// Handlers bind and validate requests through the validation package, call
// the service layer, and turn the outcome into a response or an
// *errs.HTTPError for the global error handler.
package handler
