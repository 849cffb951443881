package fn

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// KeyFunc derives a cache key from an argument list.
type KeyFunc func(args []any) string

// StructuralKey is the default [KeyFunc]. Each argument is encoded as its
// dynamic type and Go-syntax value (fmt's %T and %#v), length-prefixed, and
// the whole list is digested with BLAKE2b-256.
//
// Two argument lists share a key only when they have the same length and
// every argument has the same type and formatted value. Slices and maps are
// keyed by content, pointers by address.
func StructuralKey(args []any) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with an oversized MAC key.
		panic(err)
	}
	var size [binary.MaxVarintLen64]byte
	for _, arg := range args {
		enc := fmt.Sprintf("%T:%#v", arg, arg)
		n := binary.PutUvarint(size[:], uint64(len(enc)))
		h.Write(size[:n])
		h.Write([]byte(enc))
	}
	return string(h.Sum(nil))
}

// JoinKey joins the default string form (%v) of every argument with commas.
// Argument lists that print the same share a key: JoinKey([]any{1, "2"})
// equals JoinKey([]any{"1", 2}). Use it only when that coarseness is wanted.
func JoinKey(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, ",")
}
