// Package signer exposes the signing service over HTTP: key management,
// message signing under stored keys, and signature verification.
package signer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bitworker20/fastecc/pkg/crypto/fourq"
	"github.com/bitworker20/fastecc/pkg/keystore"
)

// Handlers contains the signing service HTTP handlers
type Handlers struct {
	store  keystore.Store
	config Config
}

// Config contains configuration for the signing handlers
type Config struct {
	MaxMessageBytes int64 // Largest accepted request body
}

// NewHandlers creates new signing service handlers
func NewHandlers(store keystore.Store, config Config) *Handlers {
	if config.MaxMessageBytes <= 0 {
		config.MaxMessageBytes = 1 << 20
	}
	return &Handlers{
		store:  store,
		config: config,
	}
}

// CreateKeyRequest represents a key creation request
type CreateKeyRequest struct {
	Label string `json:"label"` // Optional human-readable name
}

// KeyResponse represents a stored key
type KeyResponse struct {
	KID       string    `json:"kid"`             // Key identifier (UUID)
	Label     string    `json:"label,omitempty"` // Optional name
	PublicKey string    `json:"public_key"`      // Public point (hex)
	CreatedAt time.Time `json:"created_at"`
}

// SignRequest represents a signing request
type SignRequest struct {
	Message string `json:"message"` // Message to sign
}

// SignResponse represents a produced signature
type SignResponse struct {
	KID       string `json:"kid"`        // Signing key identifier
	PublicKey string `json:"public_key"` // Public point (hex)
	Signature string `json:"signature"`  // Signature (hex, 128 chars)
}

// VerifyRequest represents a verification request
type VerifyRequest struct {
	PublicKey string `json:"public_key"` // Public point (hex)
	Message   string `json:"message"`    // Signed message
	Signature string `json:"signature"`  // Signature (hex, 128 chars)
}

// VerifyResponse represents a verification result
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func keyResponse(e *keystore.Entry) KeyResponse {
	return KeyResponse{
		KID:       e.KID,
		Label:     e.Label,
		PublicKey: e.Public.String(),
		CreatedAt: e.CreatedAt,
	}
}

// CreateKey handles key generation
func (h *Handlers) CreateKey(w http.ResponseWriter, r *http.Request) {
	var req CreateKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.config.MaxMessageBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	entry, err := keystore.Generate(req.Label)
	if err != nil {
		http.Error(w, "key generation failed", http.StatusInternalServerError)
		return
	}

	if err := h.store.Put(entry); err != nil {
		if err == keystore.ErrDuplicateLabel {
			http.Error(w, "label already in use", http.StatusConflict)
		} else {
			http.Error(w, "storage error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(keyResponse(entry))
}

// ListKeys handles key listing
func (h *Handlers) ListKeys(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List()
	if err != nil {
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].KID < entries[j].KID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	keys := make([]KeyResponse, 0, len(entries))
	for i := range entries {
		keys = append(keys, keyResponse(&entries[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"keys":  keys,
		"count": len(keys),
	})
}

// GetKey handles key lookup by KID
func (h *Handlers) GetKey(w http.ResponseWriter, r *http.Request) {
	kid := chi.URLParam(r, "kid")

	entry, err := h.store.Get(kid)
	if err != nil {
		if err == keystore.ErrKeyNotFound {
			http.Error(w, "key not found", http.StatusNotFound)
		} else {
			http.Error(w, "storage error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keyResponse(entry))
}

// DeleteKey handles key deletion
func (h *Handlers) DeleteKey(w http.ResponseWriter, r *http.Request) {
	kid := chi.URLParam(r, "kid")

	if err := h.store.Delete(kid); err != nil {
		if err == keystore.ErrKeyNotFound {
			http.Error(w, "key not found", http.StatusNotFound)
		} else {
			http.Error(w, "storage error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SignMessage handles signing under a stored key
func (h *Handlers) SignMessage(w http.ResponseWriter, r *http.Request) {
	kid := chi.URLParam(r, "kid")

	entry, err := h.store.Get(kid)
	if err != nil {
		if err == keystore.ErrKeyNotFound {
			http.Error(w, "key not found", http.StatusNotFound)
		} else {
			http.Error(w, "storage error", http.StatusInternalServerError)
		}
		return
	}

	var req SignRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.config.MaxMessageBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message must not be empty", http.StatusBadRequest)
		return
	}

	sig, err := fourq.Sign(entry.Secret, req.Message)
	if err != nil {
		http.Error(w, fmt.Sprintf("signing failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SignResponse{
		KID:       entry.KID,
		PublicKey: entry.Public.String(),
		Signature: sig.String(),
	})
}

// VerifySignature handles signature verification against a caller-provided key
func (h *Handlers) VerifySignature(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.config.MaxMessageBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	public, err := fourq.ParsePoint(req.PublicKey)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid public key: %v", err), http.StatusBadRequest)
		return
	}

	sig, err := fourq.ParseSignature(req.Signature)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid signature encoding: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VerifyResponse{
		Valid: fourq.Verify(public, req.Message, sig),
	})
}
