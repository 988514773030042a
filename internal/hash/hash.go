package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

var ErrHashMismatch = errors.New("hash mismatch")

// Checksum is the blake2b-256 digest of data, hex encoded.
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func VerifyChecksum(data []byte, checksum string) error {
	if !hmac.Equal([]byte(Checksum(data)), []byte(checksum)) {
		return ErrHashMismatch
	}
	return nil
}

// CalculateHash returns the HMAC-SHA256 of data. An empty key disables signing.
func CalculateHash(data []byte, key string) string {
	if key == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func VerifyHash(data []byte, key, hash string) error {
	if key == "" {
		return nil
	}
	if !hmac.Equal([]byte(CalculateHash(data, key)), []byte(hash)) {
		return ErrHashMismatch
	}
	return nil
}
