package keystore

import (
	"fmt"
	"testing"
	"time"

	"github.com/bitworker20/fastecc/pkg/crypto/fourq"
)

func testEntry(t *testing.T, kid, label string, seed uint64) *Entry {
	t.Helper()

	secret := fourq.NewScalar(seed)
	public, err := fourq.MulBase(secret)
	if err != nil {
		t.Fatalf("failed to derive public key: %v", err)
	}
	return &Entry{
		KID:       kid,
		Label:     label,
		Secret:    secret,
		Public:    public,
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryStore_KeyOperations(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	entry := testEntry(t, "test-kid", "signing", 7)

	t.Run("Put", func(t *testing.T) {
		err := store.Put(entry)
		if err != nil {
			t.Fatalf("failed to put entry: %v", err)
		}

		// Storing the same KID again should fail
		err = store.Put(entry)
		if err != ErrKeyExists {
			t.Errorf("expected ErrKeyExists, got %v", err)
		}
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		other := testEntry(t, "other-kid", "signing", 8)
		err := store.Put(other)
		if err != ErrDuplicateLabel {
			t.Errorf("expected ErrDuplicateLabel, got %v", err)
		}
	})

	t.Run("Get", func(t *testing.T) {
		got, err := store.Get("test-kid")
		if err != nil {
			t.Fatalf("failed to get entry: %v", err)
		}

		if got.KID != entry.KID {
			t.Errorf("wrong KID: %s", got.KID)
		}
		if got.Label != entry.Label {
			t.Errorf("wrong label: %s", got.Label)
		}
		if !got.Secret.Equal(entry.Secret) {
			t.Error("secret scalar mismatch")
		}
		if !got.Public.Equal(entry.Public) {
			t.Error("public point mismatch")
		}
		if time.Since(got.CreatedAt) > time.Second {
			t.Error("created_at should be recent")
		}
	})

	t.Run("GetNonexistent", func(t *testing.T) {
		_, err := store.Get("nonexistent-kid")
		if err != ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("GetByLabel", func(t *testing.T) {
		got, err := store.GetByLabel("signing")
		if err != nil {
			t.Fatalf("failed to get entry by label: %v", err)
		}
		if got.KID != entry.KID {
			t.Errorf("wrong KID: %s", got.KID)
		}
	})

	t.Run("GetByNonexistentLabel", func(t *testing.T) {
		_, err := store.GetByLabel("nonexistent")
		if err != ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		got, err := store.Get("test-kid")
		if err != nil {
			t.Fatalf("failed to get entry: %v", err)
		}
		got.Label = "mutated"

		again, err := store.Get("test-kid")
		if err != nil {
			t.Fatalf("failed to get entry: %v", err)
		}
		if again.Label != "signing" {
			t.Error("mutating a returned entry should not affect the store")
		}
	})

	t.Run("List", func(t *testing.T) {
		second := testEntry(t, "second-kid", "", 9)
		if err := store.Put(second); err != nil {
			t.Fatalf("failed to put second entry: %v", err)
		}

		entries, err := store.List()
		if err != nil {
			t.Fatalf("failed to list entries: %v", err)
		}
		if len(entries) < 2 {
			t.Errorf("expected at least 2 entries, got %d", len(entries))
		}

		found := false
		for _, e := range entries {
			if e.KID == "test-kid" {
				found = true
				break
			}
		}
		if !found {
			t.Error("test entry not found in list")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete("test-kid")
		if err != nil {
			t.Fatalf("failed to delete entry: %v", err)
		}

		_, err = store.Get("test-kid")
		if err != ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
		}

		// The label should be free again
		reuse := testEntry(t, "reuse-kid", "signing", 10)
		if err := store.Put(reuse); err != nil {
			t.Errorf("label should be reusable after delete: %v", err)
		}
	})

	t.Run("DeleteNonexistent", func(t *testing.T) {
		err := store.Delete("nonexistent-kid")
		if err != ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})
}

func TestGenerate(t *testing.T) {
	first, err := Generate("alpha")
	if err != nil {
		t.Fatalf("failed to generate entry: %v", err)
	}
	second, err := Generate("beta")
	if err != nil {
		t.Fatalf("failed to generate entry: %v", err)
	}

	if first.KID == second.KID {
		t.Error("generated KIDs should be unique")
	}
	if first.Secret.Equal(second.Secret) {
		t.Error("generated secrets should be unique")
	}

	want, err := fourq.MulBase(first.Secret)
	if err != nil {
		t.Fatalf("failed to derive public key: %v", err)
	}
	if !first.Public.Equal(want) {
		t.Error("public point should match the secret scalar")
	}

	if first.Label != "alpha" {
		t.Errorf("wrong label: %s", first.Label)
	}
}

func TestMemoryStore_UtilityMethods(t *testing.T) {
	store := NewMemoryStore()

	t.Run("Ping", func(t *testing.T) {
		if err := store.Ping(); err != nil {
			t.Errorf("ping should always succeed for memory store: %v", err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		if err := store.Close(); err != nil {
			t.Errorf("close should always succeed for memory store: %v", err)
		}
	})

	t.Run("Stats", func(t *testing.T) {
		if err := store.Put(testEntry(t, "stats-kid", "stats", 11)); err != nil {
			t.Fatalf("failed to put entry: %v", err)
		}

		stats := store.Stats()
		if stats["keys"] < 1 {
			t.Errorf("expected at least 1 key, got %d", stats["keys"])
		}
		if stats["labels"] < 1 {
			t.Errorf("expected at least 1 label, got %d", stats["labels"])
		}
	})
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(id int) {
			defer func() { done <- true }()

			kid := fmt.Sprintf("concurrent-kid-%d", id)
			secret := fourq.NewScalar(uint64(id + 100))
			public, err := fourq.MulBase(secret)
			if err != nil {
				t.Errorf("failed to derive public key %d: %v", id, err)
				return
			}
			entry := &Entry{KID: kid, Secret: secret, Public: public, CreatedAt: time.Now().UTC()}
			if err := store.Put(entry); err != nil {
				t.Errorf("failed to put entry %d: %v", id, err)
			}

			got, err := store.Get(kid)
			if err != nil {
				t.Errorf("failed to get entry %d: %v", id, err)
				return
			}
			if got.KID != kid {
				t.Errorf("wrong KID for entry %d: %s", id, got.KID)
			}
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
