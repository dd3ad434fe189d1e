package fourqlib

import (
	"encoding/binary"
	"math/big"

	"github.com/cloudflare/circl/ecc/fourq"
)

// Order-field constants, derived once from the curve parameters. montR is
// 2^256 mod N, the Montgomery radix for 4-word scalars.
var (
	orderN   = fourq.Params().N
	montR    = new(big.Int).Mod(new(big.Int).Lsh(big.NewInt(1), 256), orderN)
	montRinv = new(big.Int).ModInverse(montR, orderN)
	montR2   = new(big.Int).Mod(new(big.Int).Mul(montR, montR), orderN)
)

// ModOrder reduces a modulo the group order.
func (e *Engine) ModOrder(a [4]uint64) [4]uint64 {
	return intToWords(new(big.Int).Mod(wordsToInt(a), orderN))
}

// AddModOrder returns (a + b) mod N.
func (e *Engine) AddModOrder(a, b [4]uint64) [4]uint64 {
	sum := new(big.Int).Add(wordsToInt(a), wordsToInt(b))
	return intToWords(sum.Mod(sum, orderN))
}

// SubModOrder returns (a - b) mod N.
func (e *Engine) SubModOrder(a, b [4]uint64) [4]uint64 {
	diff := new(big.Int).Sub(wordsToInt(a), wordsToInt(b))
	return intToWords(diff.Mod(diff, orderN))
}

// ToMontgomery converts a into the Montgomery domain: a·R mod N.
func (e *Engine) ToMontgomery(a [4]uint64) [4]uint64 {
	v := new(big.Int).Mul(wordsToInt(a), montR)
	return intToWords(v.Mod(v, orderN))
}

// FromMontgomery converts a Montgomery-domain value back: a·R⁻¹ mod N.
func (e *Engine) FromMontgomery(a [4]uint64) [4]uint64 {
	v := new(big.Int).Mul(wordsToInt(a), montRinv)
	return intToWords(v.Mod(v, orderN))
}

// MontgomeryMul multiplies two Montgomery-domain values, keeping the result in
// the domain: a·b·R⁻¹ mod N.
func (e *Engine) MontgomeryMul(a, b [4]uint64) [4]uint64 {
	v := new(big.Int).Mul(wordsToInt(a), wordsToInt(b))
	v.Mod(v, orderN)
	v.Mul(v, montRinv)
	return intToWords(v.Mod(v, orderN))
}

// MontgomeryInvert inverts a Montgomery-domain value, staying in the domain.
// The inverse of zero is zero; callers gate on zero before delegating.
func (e *Engine) MontgomeryInvert(a [4]uint64) [4]uint64 {
	v := new(big.Int).Mod(wordsToInt(a), orderN)
	if v.Sign() == 0 {
		return [4]uint64{}
	}
	v.ModInverse(v, orderN)
	v.Mul(v, montR2)
	return intToWords(v.Mod(v, orderN))
}

// Order returns the group order N as words.
func (e *Engine) Order() [4]uint64 {
	return intToWords(orderN)
}

// wordsToInt assembles four little-endian words into a big.Int.
func wordsToInt(w [4]uint64) *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(buf[24-8*i:32-8*i], w[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

// intToWords splits a non-negative value below 2^256 into little-endian words.
func intToWords(v *big.Int) [4]uint64 {
	var buf [32]byte
	v.FillBytes(buf[:])
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = binary.BigEndian.Uint64(buf[24-8*i : 32-8*i])
	}
	return w
}

// bytesToWords interprets a 32-byte buffer as four little-endian words.
func bytesToWords(b [32]byte) [4]uint64 {
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = binary.LittleEndian.Uint64(b[8*i : 8*i+8])
	}
	return w
}

// wordsToBytes lays four words out in little-endian byte order.
func wordsToBytes(w [4]uint64) [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(b[8*i:8*i+8], w[i])
	}
	return b
}
