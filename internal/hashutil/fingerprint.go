// Package hashutil computes content fingerprints for files.
//
// Fingerprints are SHA-256 digests rendered as lowercase hex. Files are
// read in fixed-size chunks so arbitrarily large files never require
// more than one chunk in memory at a time.
package hashutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// chunkSize is the read granularity for streaming digests. It also bounds
// how long a cancelled context keeps reading before the abort is observed.
const chunkSize = 64 * 1024

// Sum computes the SHA-256 checksum of data and returns it as a hex string.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// File computes the fingerprint of the file at path.
// Two calls on byte-identical content always produce the same digest.
func File(path string) (string, error) {
	return FileContext(context.Background(), path)
}

// FileContext computes the fingerprint of the file at path, checking ctx
// between chunk reads so a cancelled context aborts the read promptly.
func FileContext(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FingerprintError{Path: path, Cause: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &FingerprintError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return "", &FingerprintError{Path: path, Cause: ErrIsDirectory}
	}

	hash := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := f.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &FingerprintError{Path: path, Cause: err}
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
