package backend

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint derives a short content-addressed identifier for the
// instruction bytes a circuit was built from, so the on-disk key-pair
// cache never conflates two different programs that happen to share a
// circuit size parameter K. Groth16's per-circuit trusted setup means
// reusing a key pair across differing circuit shapes is unsound, not
// merely a cache miss, so the fingerprint is part of the cache file name
// itself rather than an optional label.
func Fingerprint(insnBytes [][8]byte) string {
	h := sha3.New256()
	for _, word := range insnBytes {
		h.Write(word[:])
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
