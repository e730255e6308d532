package core

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex BLAKE2b-256 digest of the shape of the tree at
// n: the kind and name of every entry, child counts and sibling order.
// Source paths are not part of it. Two trees have the same fingerprint
// exactly when one is a structural copy of the other.
func Fingerprint(n Node) string {
	var f fingerprinter
	f.traverse(n)
	return hex.EncodeToString(f.stack[0][:])
}

// Equal reports whether a and b have the same structure.
func Equal(a, b Node) bool {
	return Fingerprint(a) == Fingerprint(b)
}

// fingerprinter hashes bottom-up: each node pops its children's digests
// off the stack and pushes its own.
type fingerprinter struct {
	stack [][blake2b.Size256]byte
}

func (f *fingerprinter) traverse(n Node) {
	TraversePostOrder(n, f.traverse, f.hash)
}

func (f *fingerprinter) hash(n Node) {
	k := n.Len()
	base := len(f.stack) - k

	buf := []byte(kindOf(n))
	buf = append(buf, 0)
	if e, ok := n.(Entry); ok {
		buf = append(buf, e.Name()...)
	}
	buf = append(buf, 0)
	buf = binary.BigEndian.AppendUint64(buf, uint64(k))
	for _, sum := range f.stack[base:] {
		buf = append(buf, sum[:]...)
	}

	f.stack = append(f.stack[:base], blake2b.Sum256(buf))
}

func kindOf(n Node) string {
	switch n.(type) {
	case *File:
		return KindFile
	case *Dir:
		return KindDir
	default:
		return "node"
	}
}
