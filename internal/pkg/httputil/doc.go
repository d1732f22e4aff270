// Package httputil provides small JSON request/response helpers shared by
// all HTTP handlers.
package httputil
