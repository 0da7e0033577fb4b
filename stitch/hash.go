package stitch

import (
	"crypto/md5"
	"encoding/hex"
)

// Fingerprint returns the md5 hex digest of raw snippet bytes. It is an
// identity for dedup, not an integrity check.
func Fingerprint(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
