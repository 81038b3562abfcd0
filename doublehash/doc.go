// Package doublehash implements a fixed-size open-addressing hash table that
// resolves collisions with double hashing.
//
// # Probe sequence
//
// For a table of capacity m and a key hashed to h:
//
//	h1 = h mod m
//	h2 = h mod (m-2) + 1
//	slot(s) = (h1 + s*h2) mod m,  s = 0 .. m-1
//
// When m is prime, h2 lies in [1, m-2] and is coprime to m, so the sequence
// visits every slot exactly once. By default New rounds the requested size
// down to the largest prime not above it. With Reprime disabled the
// requested size is used as-is; a composite capacity can revisit slots and
// report a full table while some cells are still empty.
//
// # Operations
//
// Lookup walks the sequence until it reaches an empty cell (key absent) or
// the key. Insert walks the same sequence and writes into the first empty
// cell or, with Upsert enabled, the cell already holding the key, replacing
// its value in place.
//
// Probe counts are 1-based and never exceed the capacity.
package doublehash
