// Package service contains the business logic.
//
// It sits between the handler layer and the pure domain packages:
// it receives validated data from the handler, runs the business
// operation, and reports what happened to logs and APM.
package service
