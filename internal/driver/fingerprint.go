package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"volt/internal/version"
)

// Digest is a sha256 over the dispatch surface.
type Digest [32]byte

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Short returns the truncated form used in notes and file names.
func (d Digest) Short() string {
	return d.Hex()[:12]
}

// Fingerprint hashes everything verification depends on: the release
// version, the promotion ladder and both rule tables. A cache entry keyed
// on it goes stale the moment any rule changes.
func Fingerprint() Digest {
	h := sha256.New()
	fmt.Fprintf(h, "volt %s\n", version.Version)
	for _, s := range rankOrder {
		fmt.Fprintf(h, "rank %s\n", s)
	}
	for _, r := range CastTable() {
		fmt.Fprintf(h, "cast %s %s %s\n", r.Src, r.Dst, r.Rule)
	}
	for _, r := range BinaryTable() {
		fmt.Fprintf(h, "bin %s %s %s %s %s\n", r.Kind, r.Op, r.Class, r.Result, r.Rule)
	}
	var d Digest
	h.Sum(d[:0])
	return d
}
