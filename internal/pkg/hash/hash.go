package hash

// Hash is a one-way hash with verification.
type Hash interface {
	// Hash returns the hashed form of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches hashed.
	Verify(hashed, plaintext string) bool
}
