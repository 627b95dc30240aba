// Package mail defines the outbound email abstraction and its SMTP
// implementation.
package mail
