// Package fourq provides group arithmetic and Schnorr signatures over the
// FourQ elliptic curve.
//
// FourQ is a twisted Edwards curve over GF(p²) with p = 2¹²⁷ − 1, built for
// fast scalar multiplication via its endomorphism structure. This package
// exposes the prime-order subgroup of order N ≈ 2²⁴⁶ through two value types,
// Scalar and Point, plus a signing API on top of them. Field-level code never
// leaks into the API: all low-level work is delegated to an internal engine,
// and the types here deal only in opaque 32-byte encodings and order-field
// integers.
//
// # Scalars
//
// A Scalar is an integer modulo the group order. Construction reduces inputs
// into canonical range, and every arithmetic result is again canonical, so two
// scalars are equal exactly when their words are. Division and inversion
// reject zero.
//
// # Points
//
// A Point is an element of the prime-order subgroup. Decoding verifies both
// the curve equation and subgroup membership, so a Point in hand is always
// safe to operate on; the zero value is the identity element. Points are
// immutable: operations return new values and never mutate receivers.
//
// # Encodings
//
// Scalars and points both serialize to 32 bytes, but their hex forms differ.
// A scalar's hex string is the little-endian byte string in order, while a
// point's hex string is the byte-reversed encoding, matching the convention
// of the reference tooling this package interoperates with. Bytes and
// ParsePoint/ParseScalar are exact inverses within each type; mixing the two
// conventions is the most common integration mistake, so the round-trip
// helpers exist on both types.
//
// # Signatures
//
// Sign and Verify implement the SchnorrQ scheme: deterministic nonces derived
// through SHA-512, 64-byte signatures carrying the commitment point and the
// response scalar. Verify never panics on hostile input; malformed keys or
// signatures simply verify false.
//
// # Concurrency
//
// All types are plain values without internal pointers to mutable state.
// Distinct goroutines may share scalars and points freely.
package fourq
