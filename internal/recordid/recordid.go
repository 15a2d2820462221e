// Package recordid generates and validates the opaque identifiers assigned to
// stored records: 24 lowercase hex characters encoding a 4-byte unix timestamp
// followed by 8 random bytes.
package recordid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// Len is the length of an encoded record identifier.
const Len = 24

// New returns a fresh record identifier.
func New() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(raw[:])
}

// IsValid reports whether s is a well-formed record identifier. Hex digits are
// accepted in either case.
func IsValid(s string) bool {
	if len(s) != Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
