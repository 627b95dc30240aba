// Package clock provides a small abstraction over the system clock.
//
// Code that needs the current time should depend on Clocker instead of calling
// time.Now directly, so expiry logic can be exercised deterministically.
package clock
