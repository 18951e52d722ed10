// Package password implements the credential digest used by the account
// store. Digests are unsalted single-round SHA-256: equal plaintexts always
// produce equal digests, which the stored-data format depends on.
//
// This scheme is vulnerable to precomputed-dictionary attacks. Integrators
// who can afford a storage-format break should move to a salted, iterated
// KDF; swapping the algorithm here invalidates every stored digest,
// including the seeded demo accounts.
package password

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the lowercase hex SHA-256 digest of plaintext.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether plaintext hashes to the stored digest.
func Verify(plaintext, digest string) bool {
	return Hash(plaintext) == digest
}
