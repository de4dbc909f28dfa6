// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package synth

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/chacha20"
)

// topMask clears the bits of the leading byte above fr.Bits.
const topMask = byte(1)<<(fr.Bits%8) - 1

// stream is a ChaCha20 keystream keyed from the operating system's entropy
// source. A stream is not safe for concurrent use.
type stream struct {
	cipher *chacha20.Cipher
}

func newStream() *stream {
	var (
		key   [chacha20.KeySize]byte
		nonce [chacha20.NonceSize]byte
	)
	// crypto/rand.Read never fails
	_, _ = rand.Read(key[:])

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// unreachable: key and nonce have the sizes chacha20 expects
		panic(err)
	}
	return &stream{cipher: cipher}
}

// Read fills p with keystream bytes.
func (s *stream) Read(p []byte) (int, error) {
	clear(p)
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// scalar draws a uniformly distributed field element by rejection sampling
// 254-bit candidates against the modulus.
func (s *stream) scalar() fr.Element {
	var buf [fr.Bytes]byte
	for {
		_, _ = s.Read(buf[:])
		buf[0] &= topMask
		if e, err := fr.BigEndian.Element(&buf); err == nil {
			return e
		}
	}
}
