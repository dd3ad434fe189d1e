// Package keystore manages FourQ signing keys for the CLI and the signing
// service: generation, lookup by key ID or label, and pluggable storage
// backends.
package keystore

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bitworker20/fastecc/pkg/crypto/fourq"
)

// Entry is a stored signing key: the secret scalar, its derived public point
// and the bookkeeping fields the service layers expose. The secret never
// serializes to JSON.
type Entry struct {
	KID       string       `json:"kid"`             // Key ID (UUID)
	Label     string       `json:"label,omitempty"` // Optional human-readable name
	Secret    fourq.Scalar `json:"-"`
	Public    fourq.Point  `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store defines the interface for signing-key storage
type Store interface {
	// Put stores a new entry under its KID
	Put(entry *Entry) error

	// Get retrieves an entry by KID
	Get(kid string) (*Entry, error)

	// GetByLabel retrieves an entry by its label
	GetByLabel(label string) (*Entry, error)

	// List returns all entries
	List() ([]Entry, error)

	// Delete removes an entry by KID
	Delete(kid string) error

	// Ping checks the backend is reachable
	Ping() error

	// Close releases any resources
	Close() error
}

// Common errors
var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrKeyExists      = errors.New("key already exists")
	ErrDuplicateLabel = errors.New("label already in use")
)

// Generate creates a fresh entry with a random secret scalar and a UUID key
// ID. The caller stores it with Put.
func Generate(label string) (*Entry, error) {
	secret, err := fourq.RandomScalar()
	if err != nil {
		return nil, errors.Wrap(err, "generating secret scalar")
	}
	public, err := fourq.MulBase(secret)
	if err != nil {
		return nil, errors.Wrap(err, "deriving public key")
	}
	return &Entry{
		KID:       uuid.New().String(),
		Label:     label,
		Secret:    secret,
		Public:    public,
		CreatedAt: time.Now().UTC(),
	}, nil
}
