package ports

// CredentialHasher turns a plaintext secret into a storable digest and
// verifies plaintexts against stored digests. The salt is embedded in the
// digest encoding, so hashing the same plaintext twice yields different
// digests that both verify.
type CredentialHasher interface {
	// Hash returns the salted one-way digest of plaintext. Errors only on
	// catastrophic entropy or resource failure.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A mismatch is a
	// false return, never an error.
	Verify(plaintext, digest string) bool
}
