package merkle

import (
	"fmt"

	"github.com/tickledger/go-tickledger/common/types"
	"github.com/tickledger/go-tickledger/hash"
)

// PairHasher computes a parent digest from its left and right children.
type PairHasher func(left, right types.Identifier) types.Identifier

// Blake3Pair hashes the concatenation of both children with blake3.
func Blake3Pair(left, right types.Identifier) types.Identifier {
	return types.Identifier(hash.Sum(left[:], right[:]))
}

// Build lays out a tree of the given depth over leaves. Missing leaves are
// filled with the empty identifier.
func Build(depth uint, leaves []types.Identifier, hasher PairHasher) ([]types.Identifier, error) {
	if depth > 32 {
		return nil, fmt.Errorf("merkle: depth %d too large to build in memory", depth)
	}
	capacity := uint64(1) << depth
	if uint64(len(leaves)) > capacity {
		return nil, fmt.Errorf("merkle: %d leaves don't fit depth %d", len(leaves), depth)
	}
	digests := make([]types.Identifier, FlatSize(depth))
	copy(digests, leaves)
	var (
		offset uint64
		width  = capacity
	)
	for width > 1 {
		next := offset + width
		for i := uint64(0); i < width; i += 2 {
			digests[next+i/2] = hasher(digests[offset+i], digests[offset+i+1])
		}
		offset = next
		width >>= 1
	}
	return digests, nil
}

// Update replaces the leaf and recomputes its ancestors up to the root.
func Update(digests []types.Identifier, depth uint, leafIndex uint64, leaf types.Identifier, hasher PairHasher) {
	if leafIndex >= 1<<depth {
		panic(fmt.Sprintf("merkle: leaf index %d out of range for depth %d", leafIndex, depth))
	}
	mustFit(digests, depth)
	digests[leafIndex] = leaf
	var (
		capacity uint64 = 1 << depth
		offset   uint64
		index    = leafIndex
	)
	for level := uint(0); level < depth; level++ {
		left := index &^ 1
		parent := offset + (capacity >> level) + index>>1
		digests[parent] = hasher(digests[offset+left], digests[offset+left+1])
		offset += capacity >> level
		index >>= 1
	}
}
