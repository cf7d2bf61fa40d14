package core

import (
	"fmt"
	"hash/fnv"
)

const hashLen = 10

// HashContent returns a short, stable fingerprint of content for asset names.
func HashContent(content []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(content)
	return fmt.Sprintf("%016x", h.Sum64())[:hashLen]
}

// FingerprintName inserts hash before the extension: "styles.css" becomes
// "styles.<hash>.css".
func FingerprintName(name string, hash string) string {
	ext := extOf(name)
	return name[:len(name)-len(ext)] + "." + hash + ext
}
