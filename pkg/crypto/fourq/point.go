package fourq

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Point is an element of the prime-order subgroup. The zero value is the
// identity element. Points are immutable; all operations return fresh values.
//
// Any Point obtained from this package is already validated: decoding checks
// the curve equation and subgroup membership, and the group operations cannot
// leave the subgroup.
type Point struct {
	h EnginePoint
}

// IdentityPoint returns the neutral element.
func IdentityPoint() Point {
	return Point{}
}

// GeneratorPoint returns the subgroup generator.
func GeneratorPoint() Point {
	return Point{h: engine.Generator()}
}

// NewPointFromBytes decodes a 32-byte native-order encoding and validates the
// result. Undecodable bytes report ErrPointDecode; a decodable point that is
// off curve or outside the prime-order subgroup reports ErrPointValidation.
func NewPointFromBytes(raw [RawSize]byte) (Point, error) {
	h, err := engine.Decode(raw)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	if !engine.Validate(h) {
		return Point{}, fmt.Errorf("%w: not in prime-order subgroup", ErrPointValidation)
	}
	return Point{h: h}, nil
}

// ParsePoint parses a 64-character hex string: the byte-reversed native
// encoding, hex-encoded. Malformed hex reports ErrInvalidLength or
// ErrInvalidHexDigit; everything that fails past the hex layer, decoding
// included, reports ErrPointValidation.
func ParsePoint(s string) (Point, error) {
	rev, err := decodeHex(s)
	if err != nil {
		return Point{}, err
	}
	h, err := engine.Decode(reverseBytes(rev))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrPointValidation, err)
	}
	if !engine.Validate(h) {
		return Point{}, fmt.Errorf("%w: not in prime-order subgroup", ErrPointValidation)
	}
	return Point{h: h}, nil
}

// handle returns the engine handle, mapping the zero value to the identity.
func (p Point) handle() EnginePoint {
	if p.h == nil {
		return engine.Identity()
	}
	return p.h
}

// Bytes returns the 32-byte native-order encoding.
func (p Point) Bytes() [RawSize]byte {
	return engine.Encode(p.handle())
}

// String returns the hex form: the byte-reversed encoding, hex-encoded. Note
// the asymmetry with Scalar, whose hex form is not reversed.
func (p Point) String() string {
	rev := reverseBytes(p.Bytes())
	return hex.EncodeToString(rev[:])
}

// IsIdentity reports whether p is the neutral element.
func (p Point) IsIdentity() bool {
	if p.h == nil {
		return true
	}
	return engine.IsIdentity(p.h)
}

// Equal reports whether both points encode identically.
func (p Point) Equal(q Point) bool {
	return p.Bytes() == q.Bytes()
}

// Less compares the native encodings lexicographically, giving points a total
// order for use as container keys.
func (p Point) Less(q Point) bool {
	pb, qb := p.Bytes(), q.Bytes()
	return bytes.Compare(pb[:], qb[:]) < 0
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{h: engine.Add(p.handle(), q.handle())}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// Negate returns -p, computed as (N-1)·p. The identity negates to itself. The
// multiplication cannot fail on a healthy engine, so a reported failure is a
// programming error and panics.
func (p Point) Negate() Point {
	if p.IsIdentity() {
		return Point{}
	}
	minusOne := Order().Sub(NewScalar(1))
	h, err := engine.Mul(minusOne.w, p.h)
	if err != nil {
		panic(fmt.Sprintf("fourq: point negation failed: %v", err))
	}
	return Point{h: h}
}

// Mul returns k·p. The multiplier is reduced modulo the group order, so
// multiplying by Order yields the identity.
func (p Point) Mul(k Scalar) (Point, error) {
	h, err := engine.Mul(k.w, p.handle())
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrScalarMul, err)
	}
	return Point{h: h}, nil
}

// MulAdd returns mG·G + mP·p in a single double-base pass, the combination
// signature verification evaluates.
func (p Point) MulAdd(mG, mP Scalar) (Point, error) {
	h, err := engine.DoubleMul(mG.w, p.handle(), mP.w)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrScalarMul, err)
	}
	return Point{h: h}, nil
}

// MulBase returns k·G using the fixed-base tables, faster than
// GeneratorPoint().Mul(k).
func MulBase(k Scalar) (Point, error) {
	h, err := engine.MulBase(k.w)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrScalarMul, err)
	}
	return Point{h: h}, nil
}
