package receipt

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Preview returns a short hex reference of the receipt bytes.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Preview(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:10])
}
