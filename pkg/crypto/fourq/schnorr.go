package fourq

import (
	"encoding/hex"
	"fmt"
)

// Message constrains the signable input shapes: raw bytes or any string form.
// Both convert to the same byte sequence, so signing a string and verifying
// its []byte conversion succeeds.
type Message interface {
	~[]byte | ~string
}

// Signature is a SchnorrQ signature: the encoded commitment point in the
// first half, the response scalar in the second. It is treated as an opaque
// 64-byte value; its hex form is the plain encoding with no byte reversal.
type Signature [SignatureSize]byte

// ParseSignature parses the 128-character hex form of a signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	if len(s) != 2*SignatureSize {
		return sig, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidLength, 2*SignatureSize, len(s))
	}
	if _, err := hex.Decode(sig[:], []byte(s)); err != nil {
		return sig, fmt.Errorf("%w: %v", ErrInvalidHexDigit, err)
	}
	return sig, nil
}

// String returns the signature hex-encoded.
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Sign signs msg under secretKey and returns the deterministic signature.
// Equal key and message always produce the same signature. The message must
// be non-empty; an empty one reports ErrSignatureOperation.
func Sign[M Message](secretKey Scalar, msg M) (Signature, error) {
	pub, err := MulBase(secretKey)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: deriving public key: %v", ErrSignatureOperation, err)
	}
	m := []byte(msg)
	if len(m) == 0 {
		return Signature{}, fmt.Errorf("%w: empty message", ErrSignatureOperation)
	}
	raw, err := engine.SchnorrSign(secretKey.Bytes(), pub.Bytes(), m)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrSignatureOperation, err)
	}
	return Signature(raw), nil
}

// Verify reports whether sig is a valid signature on msg under publicKey. It
// never panics on hostile input; any malformed or mismatched signature simply
// verifies false.
func Verify[M Message](publicKey Point, msg M, sig Signature) bool {
	ok, err := engine.SchnorrVerify(publicKey.Bytes(), []byte(msg), [SignatureSize]byte(sig))
	return err == nil && ok
}
