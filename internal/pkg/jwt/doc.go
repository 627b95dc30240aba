// Package jwt issues and verifies the JSON Web Tokens used for API
// authentication.
package jwt
