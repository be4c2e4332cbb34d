// Package model holds the request and response payloads exchanged over HTTP.
package model
