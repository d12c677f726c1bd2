// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for passphrase hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext passphrase.
	Hash(password string) (string, error)

	// Check compares a plaintext passphrase with a hash to see if they match.
	Check(password, hash string) bool
}
