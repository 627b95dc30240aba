// Package otp generates the numeric one-time codes used for email
// verification.
package otp
