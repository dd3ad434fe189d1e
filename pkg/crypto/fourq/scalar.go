package fourq

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Scalar is an integer modulo the group order N. The zero value is the zero
// scalar. Constructors reduce their input, and every arithmetic result is
// reduced, so equal values always have equal words. The one exception is the
// value returned by Order, which carries N itself; Sanitize folds any such
// value back into canonical range.
type Scalar struct {
	w Words
}

// NewScalar returns the scalar with the given small value.
func NewScalar(v uint64) Scalar {
	return Scalar{w: Words{v}}
}

// ZeroScalar returns the zero scalar.
func ZeroScalar() Scalar {
	return Scalar{}
}

// NewScalarFromBytes interprets raw as a little-endian integer and reduces it
// modulo the group order.
func NewScalarFromBytes(raw [RawSize]byte) Scalar {
	return Scalar{w: engine.ModOrder(wordsFromBytes(raw))}
}

// ParseScalar parses a 64-character hex string in little-endian byte order.
// The value is reduced modulo the group order.
func ParseScalar(s string) (Scalar, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return Scalar{}, err
	}
	return NewScalarFromBytes(raw), nil
}

// RandomScalar draws a uniformly distributed scalar from crypto/rand.
func RandomScalar() (Scalar, error) {
	var raw [RawSize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return Scalar{}, fmt.Errorf("failed to generate random scalar: %w", err)
	}
	return NewScalarFromBytes(raw), nil
}

// Order returns the group order N. The returned value is deliberately not
// reduced, so it is the one Scalar outside canonical range; it behaves as zero
// in modular arithmetic and Sanitize maps it to the zero scalar.
func Order() Scalar {
	return Scalar{w: engine.Order()}
}

// Bytes returns the little-endian byte encoding.
func (s Scalar) Bytes() [RawSize]byte {
	return bytesFromWords(s.w)
}

// String returns the hex form of Bytes, least significant byte first.
func (s Scalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// IsZero reports whether all words are zero.
func (s Scalar) IsZero() bool {
	return s.w == Words{}
}

// Sanitize reduces the scalar modulo the group order. Values built through
// the constructors are already canonical; this exists for words obtained
// elsewhere, such as Order.
func (s Scalar) Sanitize() Scalar {
	return Scalar{w: engine.ModOrder(s.w)}
}

// Add returns s + t mod N.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{w: engine.AddModOrder(s.w, t.w)}
}

// Sub returns s - t mod N.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{w: engine.SubModOrder(s.w, t.w)}
}

// Mul returns s · t mod N. The product runs through the Montgomery domain:
// both operands are converted in, multiplied, and converted back out.
func (s Scalar) Mul(t Scalar) Scalar {
	p := engine.MontgomeryMul(engine.ToMontgomery(s.w), engine.ToMontgomery(t.w))
	return Scalar{w: engine.FromMontgomery(p)}
}

// Div returns s / t mod N, failing with ErrDivisionByZero when t is zero.
func (s Scalar) Div(t Scalar) (Scalar, error) {
	if t.IsZero() {
		return Scalar{}, fmt.Errorf("%w: divisor is zero", ErrDivisionByZero)
	}
	inv := engine.MontgomeryInvert(engine.ToMontgomery(t.w))
	p := engine.MontgomeryMul(engine.ToMontgomery(s.w), inv)
	return Scalar{w: engine.FromMontgomery(p)}, nil
}

// Invert returns s⁻¹ mod N, failing with ErrInversionOfZero when s is zero.
func (s Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, fmt.Errorf("%w: scalar is zero", ErrInversionOfZero)
	}
	inv := engine.MontgomeryInvert(engine.ToMontgomery(s.w))
	return Scalar{w: engine.FromMontgomery(inv)}, nil
}

// Negate returns -s mod N. The negation of zero is zero.
func (s Scalar) Negate() Scalar {
	if s.IsZero() {
		return Scalar{}
	}
	return Scalar{w: engine.SubModOrder(engine.Order(), s.w)}
}

// Equal reports whether the two scalars have identical words.
func (s Scalar) Equal(t Scalar) bool {
	return s.w == t.w
}

// Less compares the little-endian byte encodings lexicographically. Note this
// is a byte-string order, not a numeric one: it serves containers that need a
// total order, nothing more.
func (s Scalar) Less(t Scalar) bool {
	sb, tb := s.Bytes(), t.Bytes()
	return bytes.Compare(sb[:], tb[:]) < 0
}
