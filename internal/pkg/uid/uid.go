// Package uid provides the identifier generators used across modules:
// snowflake numeric IDs for entities and UUID strings for tokens and
// correlation IDs.
package uid

// NumberID generates unique int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
