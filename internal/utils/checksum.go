package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Checksum holds the SHA-256 digest and size of a file
type Checksum struct {
	SHA256 string
	Size   int64
}

// ChecksumFile calculates the SHA-256 of a file in a single streaming pass
func ChecksumFile(path string) (*Checksum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	return &Checksum{
		SHA256: hex.EncodeToString(h.Sum(nil)),
		Size:   info.Size(),
	}, nil
}
