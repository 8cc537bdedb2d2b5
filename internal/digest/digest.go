// Package digest computes BLAKE3 content digests, used to make fix
// runs auditable: the CLI logs the digest of the dataset bytes before
// and after a rewrite.
package digest

import (
	"encoding/hex"
	"os"

	"github.com/zeebo/blake3"
)

// Sum returns the hex-encoded BLAKE3-256 digest of data.
func Sum(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SumFile returns the hex-encoded BLAKE3-256 digest of the file at
// path, read raw (compressed files are hashed as stored).
func SumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Sum(data), nil
}
