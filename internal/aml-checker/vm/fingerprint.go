package vm

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Fingerprint computes a deterministic digest of a phase's raw input
// buffer using the requested hash function, for attaching to a rejection
// error so a caller can correlate it with exactly the bytes that produced
// it. It never influences control flow: two different hash functions
// fingerprinting the same rejected buffer disagree on the digest but
// never on the verdict.
func Fingerprint(hashFunc string, data []byte) []byte {
	switch hashFunc {
	case "sha256":
		h := sha256.Sum256(data)
		return h[:]
	case "sha3", "":
		h := sha3.Sum256(data)
		return h[:]
	default:
		h := sha3.Sum256(data)
		return h[:]
	}
}
