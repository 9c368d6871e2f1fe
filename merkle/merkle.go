// Package merkle implements index arithmetic over perfect binary digest trees
// stored as one flat array, levels concatenated from the leaves up.
//
// A tree of depth d holds 2^d leaves at offset 0, their 2^(d-1) parents at
// offset 2^d and so on, with the root as the last element. The spectrum
// (balances) and universe (assets) trees use this layout.
//
// Nothing in this package synchronizes access to the digest array. Callers
// that mutate the tree must exclude readers while a path is extracted.
package merkle

import (
	"fmt"

	"github.com/tickledger/go-tickledger/common/types"
)

// FlatSize returns the number of digests in a tree of the given depth.
func FlatSize(depth uint) uint64 {
	return 1<<(depth+1) - 1
}

// LevelOffset returns the index of the first digest of level in the flat array.
// Level 0 are the leaves, level depth is the root.
//
// It panics if level is above depth.
func LevelOffset(depth, level uint) uint64 {
	if level > depth {
		panic(fmt.Sprintf("merkle: level %d above depth %d", level, depth))
	}
	// sum of 2^depth + 2^(depth-1) + ... for the levels below
	return (1<<(depth+1) - 1) - (1<<(depth-level+1) - 1)
}

// Root returns the last digest of the flat array.
func Root(digests []types.Identifier, depth uint) types.Identifier {
	mustFit(digests, depth)
	return digests[FlatSize(depth)-1]
}

// Siblings returns the authentication path of the leaf, ordered from the leaf
// level up to the level just below the root.
//
// It panics if leafIndex is not below 2^depth or if digests can't hold a tree
// of the given depth.
func Siblings(leafIndex uint64, digests []types.Identifier, depth uint) []types.Identifier {
	siblings := make([]types.Identifier, depth)
	SiblingsInto(siblings, leafIndex, digests, depth)
	return siblings
}

// SiblingsInto is Siblings that writes the path into dst, which must have length depth.
func SiblingsInto(dst []types.Identifier, leafIndex uint64, digests []types.Identifier, depth uint) {
	if uint(len(dst)) != depth {
		panic(fmt.Sprintf("merkle: siblings buffer length %d, depth %d", len(dst), depth))
	}
	if leafIndex >= 1<<depth {
		panic(fmt.Sprintf("merkle: leaf index %d out of range for depth %d", leafIndex, depth))
	}
	mustFit(digests, depth)

	var (
		capacity uint64 = 1 << depth
		offset   uint64
		index    = leafIndex
	)
	for level := uint(0); level < depth; level++ {
		dst[level] = digests[offset+(index^1)]
		offset += capacity >> level
		index >>= 1
	}
}

func mustFit(digests []types.Identifier, depth uint) {
	if depth > 63 {
		panic(fmt.Sprintf("merkle: depth %d too large", depth))
	}
	if uint64(len(digests)) < FlatSize(depth) {
		panic(fmt.Sprintf("merkle: %d digests can't hold a tree of depth %d", len(digests), depth))
	}
}
