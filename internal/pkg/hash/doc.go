// Package hash groups the one-way hashing primitives the platform needs:
// bcrypt for passwords and HMAC-SHA256 for opaque tokens that must be
// matched by equality in the database.
package hash
