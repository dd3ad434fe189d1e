package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bitworker20/fastecc/pkg/keystore"
	mw "github.com/bitworker20/fastecc/pkg/middleware"
	"github.com/bitworker20/fastecc/pkg/signer"
)

func main() {
	// Command line flags
	var (
		addr       = flag.String("addr", ":8080", "Server address")
		rateLimit  = flag.Int("rate-limit", 120, "Max requests per minute per client")
		signRate   = flag.Int("sign-rate-limit", 30, "Max sign requests per minute per key")
		maxBody    = flag.Int64("max-body", 1<<20, "Largest accepted request body in bytes")
		reqTimeout = flag.Duration("timeout", 30*time.Second, "Per-request timeout")
	)
	flag.Parse()

	log.Println("Starting FourQ signing service...")

	// Initialize key storage (in-memory)
	store := keystore.NewMemoryStore()
	defer store.Close()
	log.Println("Initialized in-memory key store")
	log.Printf("Rate limit: %d requests/minute per client", *rateLimit)
	log.Printf("Sign rate limit: %d requests/minute per key", *signRate)

	// Create signing handlers
	handlers := signer.NewHandlers(store, signer.Config{
		MaxMessageBytes: *maxBody,
	})

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(*reqTimeout))
	r.Use(mw.RateLimit(*rateLimit, time.Minute))

	// CORS for development
	r.Use(mw.CORS())

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"fastecc-signd"}`)
	})

	// Key management routes
	r.Post("/keys", handlers.CreateKey)
	r.Get("/keys", handlers.ListKeys)
	r.Get("/keys/{kid}", handlers.GetKey)
	r.Delete("/keys/{kid}", handlers.DeleteKey)

	// Signing gets an extra per-key limit on top of the per-client one
	perKey := mw.RateLimitWithKey(*signRate, time.Minute, func(r *http.Request) string {
		return chi.URLParam(r, "kid")
	})
	r.With(perKey).Post("/keys/{kid}/sign", handlers.SignMessage)
	r.Post("/verify", handlers.VerifySignature)

	// Admin routes (no auth for demo)
	r.Get("/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := store.Stats()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"keys":%d,"labels":%d}`, stats["keys"], stats["labels"])
	})

	// Service information endpoint
	r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"service":"fastecc-signd","curve":"FourQ","scheme":"SchnorrQ","signature_bytes":64}`)
	})

	// Start server
	log.Printf("Server starting on %s", *addr)
	log.Println()
	log.Println("Endpoints:")
	log.Println("  POST   /keys            - Generate a signing key")
	log.Println("  GET    /keys            - List signing keys")
	log.Println("  GET    /keys/{kid}      - Get a signing key")
	log.Println("  DELETE /keys/{kid}      - Delete a signing key")
	log.Println("  POST   /keys/{kid}/sign - Sign a message")
	log.Println("  POST   /verify          - Verify a signature")
	log.Println("  GET    /health          - Health check")
	log.Println("  GET    /admin/stats     - Key store stats")
	log.Println("  GET    /info            - Service information")
	log.Println()

	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
