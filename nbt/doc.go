// Package nbt implements the NBT (Named Binary Tag) format used by
// Minecraft to persist hierarchical game state.
//
// # Overview
//
// NBT is a recursive, strongly typed binary tree format. A document is one
// named root compound; compounds map unique string keys to tags in
// insertion order, lists hold homogeneously typed sequences, and ten
// scalar/array variants carry the leaf payloads. All wire integers are
// big-endian two's-complement, floats are IEEE-754.
//
// # Key Types
//
//   - Tag: the sealed interface over the thirteen variants
//   - Compound, List: the recursive containers
//   - Byte..Double, String, ByteArray, IntArray, LongArray: leaf variants
//   - File: the on-disk container (root header plus optional gzip framing)
//
// # Loading a Document
//
//	f, err := nbt.Load("world/level.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := f.Root.Get("Data")
//
// Compression status need not be known up front: Load tries gzip first and
// falls back to the raw bytes.
//
// # Concurrency
//
// Encode and decode are pure transformations over caller-owned buffers and
// trees. Trees are not safe for concurrent mutation; a caller that shares
// one across goroutines must serialize access externally.
package nbt
