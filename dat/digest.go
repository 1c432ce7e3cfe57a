package dat

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// chunkSize is the read granularity for digesting: 64 KiB.
const chunkSize = 1 << 16

// Digest is the result of streaming a file once through all three checksum
// accumulators. Hex values are lowercase and zero-padded to 8/32/40 digits.
type Digest struct {
	Size  int64
	CRC32 string
	MD5   string
	SHA1  string
}

// DigestReader consumes r to EOF in a single pass, feeding every chunk to
// the CRC-32 (IEEE), MD5, and SHA-1 accumulators.
func DigestReader(r io.Reader) (Digest, error) {
	crc := crc32.NewIEEE()
	md := md5.New()
	sha := sha1.New()

	n, err := io.CopyBuffer(io.MultiWriter(crc, md, sha), r, make([]byte, chunkSize))
	if err != nil {
		return Digest{}, err
	}

	return Digest{
		Size:  n,
		CRC32: fmt.Sprintf("%08x", crc.Sum32()),
		MD5:   fmt.Sprintf("%x", md.Sum(nil)),
		SHA1:  fmt.Sprintf("%x", sha.Sum(nil)),
	}, nil
}

// DigestFile opens path and digests its contents. The returned error wraps
// the underlying os error, so callers can check it with errors.Is.
func DigestFile(path string) (Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Digest{}, err
	}
	if info.IsDir() {
		return Digest{}, ErrExpectedFile
	}
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()

	d, err := DigestReader(f)
	if err != nil {
		return Digest{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}
