package fourq

import (
	"github.com/bitworker20/fastecc/internal/fourqlib"
)

// Sizes of the serialized forms.
const (
	// RawSize is the byte length of scalar and point encodings.
	RawSize = 32
	// SignatureSize is the byte length of a signature.
	SignatureSize = 64
)

// Words is the in-memory layout of an order-field element: four 64-bit words,
// least significant first.
type Words = [4]uint64

// EnginePoint is an opaque handle to an engine-native point. Handles are
// produced and consumed only by the engine; this package never inspects them.
// A handle is immutable once returned.
type EnginePoint = any

// Engine is the curve primitive backend behind Scalar, Point and the signing
// API. The production implementation lives in internal/fourqlib; tests swap in
// mocks to drive the failure paths that a healthy backend never takes.
//
// Word-typed parameters are order-field elements. Operations taking a
// multiplier reduce it modulo the order, so passing the order itself yields
// the identity.
type Engine interface {
	// ModOrder reduces a modulo the group order.
	ModOrder(a Words) Words
	// AddModOrder returns (a + b) mod N.
	AddModOrder(a, b Words) Words
	// SubModOrder returns (a - b) mod N.
	SubModOrder(a, b Words) Words
	// ToMontgomery converts a into the Montgomery domain.
	ToMontgomery(a Words) Words
	// FromMontgomery converts a Montgomery-domain value back to plain form.
	FromMontgomery(a Words) Words
	// MontgomeryMul multiplies two Montgomery-domain values; the result stays
	// in the domain.
	MontgomeryMul(a, b Words) Words
	// MontgomeryInvert inverts a Montgomery-domain value, staying in the
	// domain. The inverse of zero is zero; callers gate on zero first.
	MontgomeryInvert(a Words) Words
	// Order returns the group order N.
	Order() Words

	// Identity returns the neutral element.
	Identity() EnginePoint
	// Generator returns the curve generator.
	Generator() EnginePoint
	// Decode parses a 32-byte native-order encoding. It does not check
	// subgroup membership; pair it with Validate.
	Decode(raw [RawSize]byte) (EnginePoint, error)
	// Encode normalizes the point and serializes it in native byte order.
	Encode(p EnginePoint) [RawSize]byte
	// Validate reports whether p is on the curve and in the prime-order
	// subgroup.
	Validate(p EnginePoint) bool
	// IsIdentity reports whether p is the neutral element.
	IsIdentity(p EnginePoint) bool
	// Add returns p + q.
	Add(p, q EnginePoint) EnginePoint
	// Mul returns k·p for a variable base point.
	Mul(k Words, p EnginePoint) (EnginePoint, error)
	// MulBase returns k·G via the fixed-base tables.
	MulBase(k Words) (EnginePoint, error)
	// DoubleMul returns kG·G + kP·p in one pass, the shape used by
	// signature verification.
	DoubleMul(kG Words, p EnginePoint, kP Words) (EnginePoint, error)

	// SchnorrSign signs msg with the secret scalar and its encoded public
	// key, producing a 64-byte signature.
	SchnorrSign(secret, pub [RawSize]byte, msg []byte) ([SignatureSize]byte, error)
	// SchnorrVerify checks a signature against the encoded public key.
	SchnorrVerify(pub [RawSize]byte, msg []byte, sig [SignatureSize]byte) (bool, error)
}

// engine is the active backend for the whole package.
var engine Engine = fourqlib.New()
