package service

// ActionGate authorizes sensitive operations with a secondary passphrase.
// Record deletion and sale status changes each have their own passphrase.
type ActionGate interface {
	// AuthorizeDelete checks the passphrase required for destructive operations.
	AuthorizeDelete(passphrase string) error

	// AuthorizeStatusChange checks the passphrase required for sale status changes.
	AuthorizeStatusChange(passphrase string) error
}
