// Package observability builds the zap loggers used across the career advisor
// and attaches request-scoped fields to them.
package observability
