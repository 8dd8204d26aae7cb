package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data. Artifact keys are built
// from these, so the full 64-character digest is kept; truncating
// would trade collision margin for nothing.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced key of the form "prefix:digest", where
// the digest covers the JSON encoding of all parts. JSON keeps the
// encoding unambiguous: ("ab", "c") and ("a", "bc") hash differently.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
