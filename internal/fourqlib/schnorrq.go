package fourqlib

import (
	"crypto/sha512"

	"github.com/pkg/errors"
)

var (
	errKeyEncoding = errors.New("fourqlib: invalid public key encoding")
	errSigEncoding = errors.New("fourqlib: invalid signature encoding")
)

// SchnorrSign signs msg with the secret scalar and its encoded public key,
// returning the 64-byte signature enc(R) ‖ s. The nonce is derived
// deterministically by expanding the secret through SHA-512 and hashing the
// upper half with the message, so equal inputs produce equal signatures.
func (e *Engine) SchnorrSign(secret, pub [32]byte, msg []byte) ([64]byte, error) {
	var sig [64]byte

	expanded := sha512.Sum512(secret[:])

	h := sha512.New()
	h.Write(expanded[32:])
	h.Write(msg)
	nonce := h.Sum(nil)

	var nb [32]byte
	copy(nb[:], nonce[:32])
	r := e.ModOrder(bytesToWords(nb))

	R, err := e.MulBase(r)
	if err != nil {
		return sig, errors.Wrap(err, "nonce point")
	}
	encR := e.Encode(R)
	copy(sig[:32], encR[:])

	ch := e.challenge(sig[:32], pub, msg)

	sk := e.ModOrder(bytesToWords(secret))
	prod := e.FromMontgomery(e.MontgomeryMul(e.ToMontgomery(sk), e.ToMontgomery(ch)))
	s := e.SubModOrder(r, prod)

	sb := wordsToBytes(s)
	copy(sig[32:], sb[:])
	return sig, nil
}

// SchnorrVerify checks sig over msg against the encoded public key. The bit
// prechecks reject encodings no signer can produce: the top bit of byte 15 is
// always clear in a point encoding, and s is a reduced scalar below 2^246.
func (e *Engine) SchnorrVerify(pub [32]byte, msg []byte, sig [64]byte) (bool, error) {
	if pub[15]&0x80 != 0 {
		return false, errKeyEncoding
	}
	if sig[15]&0x80 != 0 || sig[63] != 0 || sig[62]&0xC0 != 0 {
		return false, errSigEncoding
	}

	A, err := e.Decode(pub)
	if err != nil {
		return false, errors.Wrap(err, "public key")
	}

	ch := e.challenge(sig[:32], pub, msg)

	var sb [32]byte
	copy(sb[:], sig[32:])

	R, err := e.DoubleMul(bytesToWords(sb), A, ch)
	if err != nil {
		return false, err
	}

	var encR [32]byte
	copy(encR[:], sig[:32])
	return e.Encode(R) == encR, nil
}

// challenge hashes enc(R) ‖ pk ‖ msg and reduces the first 32 digest bytes to
// a scalar.
func (e *Engine) challenge(encR []byte, pub [32]byte, msg []byte) [4]uint64 {
	h := sha512.New()
	h.Write(encR)
	h.Write(pub[:])
	h.Write(msg)
	digest := h.Sum(nil)

	var cb [32]byte
	copy(cb[:], digest[:32])
	return e.ModOrder(bytesToWords(cb))
}
