package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent digests the given chunks in order. Identical inputs always
// produce identical digests, which is what the preview cache and the
// build report lean on.
func HashContent(chunks ...[]byte) string {
	h := sha256.New()
	for _, c := range chunks {
		h.Write(c)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortDigest trims a digest down to a display-friendly prefix.
func ShortDigest(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12]
}
