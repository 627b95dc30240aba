// Package validator provides a thin validation abstraction for request and
// domain structs.
//
// Business code depends on the Validator interface so rules stay shared and
// testable; the go-playground/validator v10 implementation lives here.
package validator
