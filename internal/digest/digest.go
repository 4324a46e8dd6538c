// Package digest computes streaming content fingerprints of files.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Algorithm selects the hash function for a fingerprint.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// DefaultChunkSize bounds memory use while streaming file contents.
const DefaultChunkSize = 64 << 10

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case MD5, SHA1, SHA256:
		return true
	}
	return false
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", a)
	}
}

// File streams the file at path through the chosen hash in fixed-size chunks
// and returns the hex-encoded digest. chunkSize <= 0 selects
// DefaultChunkSize. Any I/O failure is returned as an error; bulk scans are
// expected to drop the file and continue.
func File(path string, algo Algorithm, chunkSize int) (string, error) {
	h, err := algo.newHash()
	if err != nil {
		return "", err
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
