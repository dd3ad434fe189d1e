package fourq

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// decodeHex parses exactly 2*RawSize hex characters into a raw buffer. Length
// is checked before digits, so truncated input reports ErrInvalidLength even
// when it also contains junk characters.
func decodeHex(s string) ([RawSize]byte, error) {
	var out [RawSize]byte
	if len(s) != 2*RawSize {
		return out, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidLength, 2*RawSize, len(s))
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidHexDigit, err)
	}
	return out, nil
}

// reverseBytes flips the buffer end to end. Point hex strings are the
// byte-reversed native encoding, so this is the bridge between the two forms.
func reverseBytes(in [RawSize]byte) [RawSize]byte {
	var out [RawSize]byte
	for i := range in {
		out[i] = in[RawSize-1-i]
	}
	return out
}

// wordsFromBytes interprets raw as four little-endian 64-bit words.
func wordsFromBytes(raw [RawSize]byte) Words {
	var w Words
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(raw[8*i : 8*i+8])
	}
	return w
}

// bytesFromWords lays the words back out in little-endian byte order.
func bytesFromWords(w Words) [RawSize]byte {
	var raw [RawSize]byte
	for i := range w {
		binary.LittleEndian.PutUint64(raw[8*i:8*i+8], w[i])
	}
	return raw
}
