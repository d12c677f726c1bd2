package auth

import (
	"github.com/pkg/errors"

	"loja/config"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/service"
)

// passphraseGate implements the ActionGate interface on top of bcrypt hashes
// loaded from configuration. Plaintext passphrases are never stored server-side.
type passphraseGate struct {
	hasher           service.PasswordHasher
	deleteHash       string
	statusChangeHash string
}

// NewPassphraseGate is the constructor for passphraseGate.
func NewPassphraseGate(cfg *config.Config, hasher service.PasswordHasher) (service.ActionGate, error) {
	if cfg.AdminGate == nil || cfg.AdminGate.DeleteHash == "" || cfg.AdminGate.StatusChangeHash == "" {
		return nil, errors.New("admin gate passphrase hashes must be provided")
	}

	return &passphraseGate{
		hasher:           hasher,
		deleteHash:       cfg.AdminGate.DeleteHash,
		statusChangeHash: cfg.AdminGate.StatusChangeHash,
	}, nil
}

// AuthorizeDelete checks the passphrase required for destructive operations.
func (g *passphraseGate) AuthorizeDelete(passphrase string) error {
	if !g.hasher.Check(passphrase, g.deleteHash) {
		return domainerrors.ErrPassphraseRejected
	}

	return nil
}

// AuthorizeStatusChange checks the passphrase required for sale status changes.
func (g *passphraseGate) AuthorizeStatusChange(passphrase string) error {
	if !g.hasher.Check(passphrase, g.statusChangeHash) {
		return domainerrors.ErrPassphraseRejected
	}

	return nil
}
