// Package fourqlib is the curve primitive backend for pkg/crypto/fourq. It
// wraps circl's FourQ group operations, implements order-field arithmetic over
// math/big, and carries the SchnorrQ signing core. Nothing here is meant for
// direct application use; the exported surface exists to satisfy the engine
// contract of the public package.
package fourqlib

import (
	"github.com/cloudflare/circl/ecc/fourq"
	"github.com/pkg/errors"
)

// Engine provides the curve primitives consumed by pkg/crypto/fourq. It is
// stateless and safe for concurrent use; the precomputed tables inside circl
// are read-only.
type Engine struct{}

// New returns the production engine.
func New() *Engine {
	return &Engine{}
}

var errDecode = errors.New("fourqlib: invalid point encoding")

// Identity returns a handle to the neutral element (0, 1).
func (e *Engine) Identity() any {
	P := new(fourq.Point)
	P.SetIdentity()
	return P
}

// Generator returns a handle to the curve generator.
func (e *Engine) Generator() any {
	P := new(fourq.Point)
	P.SetGenerator()
	return P
}

// Decode parses a 32-byte native-order encoding into a point handle. It
// performs no subgroup check; callers follow up with Validate.
func (e *Engine) Decode(raw [32]byte) (any, error) {
	P := new(fourq.Point)
	if !P.Unmarshal(&raw) {
		return nil, errDecode
	}
	return P, nil
}

// Encode normalizes the point and serializes it in native byte order.
func (e *Engine) Encode(p any) [32]byte {
	var out [32]byte
	p.(*fourq.Point).Marshal(&out)
	return out
}

// Validate reports whether the point lies on the curve and inside the
// prime-order subgroup. The curve has cofactor 392, so an on-curve check alone
// admits small-torsion points; the subgroup check closes that gap.
func (e *Engine) Validate(p any) bool {
	P := p.(*fourq.Point)
	return P.IsOnCurve() && e.isTorsionFree(P)
}

// isTorsionFree checks N·P == identity by double-and-add over the complete
// addition law. Only decode boundaries pay this cost; arithmetic between
// validated points stays inside the subgroup.
func (e *Engine) isTorsionFree(p *fourq.Point) bool {
	acc := new(fourq.Point)
	acc.SetIdentity()
	cur := new(fourq.Point)
	cur.Add(p, acc)
	for i := 0; i < orderN.BitLen(); i++ {
		if orderN.Bit(i) == 1 {
			next := new(fourq.Point)
			next.Add(acc, cur)
			acc = next
		}
		dbl := new(fourq.Point)
		dbl.Add(cur, cur)
		cur = dbl
	}
	return acc.IsIdentity()
}

// IsIdentity reports whether the handle is the neutral element.
func (e *Engine) IsIdentity(p any) bool {
	return p.(*fourq.Point).IsIdentity()
}

// Add returns p + q as a fresh handle. The Edwards addition law is complete,
// so any pair of subgroup points is accepted.
func (e *Engine) Add(p, q any) any {
	R := new(fourq.Point)
	R.Add(p.(*fourq.Point), q.(*fourq.Point))
	return R
}

// Mul returns k·p for a variable base. Multiplier words are reduced modulo the
// order first, so k == N yields the identity.
func (e *Engine) Mul(k [4]uint64, p any) (any, error) {
	kb := wordsToBytes(e.ModOrder(k))
	R := new(fourq.Point)
	R.ScalarMult(&kb, p.(*fourq.Point))
	return R, nil
}

// MulBase returns k·G using the fixed-base tables.
func (e *Engine) MulBase(k [4]uint64) (any, error) {
	kb := wordsToBytes(e.ModOrder(k))
	R := new(fourq.Point)
	R.ScalarBaseMult(&kb)
	return R, nil
}

// DoubleMul returns kG·G + kP·p, the double-base product used by signature
// verification.
func (e *Engine) DoubleMul(kG [4]uint64, p any, kP [4]uint64) (any, error) {
	left, err := e.MulBase(kG)
	if err != nil {
		return nil, err
	}
	right, err := e.Mul(kP, p)
	if err != nil {
		return nil, err
	}
	return e.Add(left, right), nil
}
