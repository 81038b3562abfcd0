// Package multirow implements a fixed-size hash table whose cells are split
// into rows, each addressed with its own prime modulus.
//
// # Addressing
//
// A table of R rows and C columns owns R*C cells. Row r uses the modulus
// prime[r], where
//
//	prime[0] = largest prime below C+1
//	prime[i] = largest prime below prime[i-1]
//
// and a key hashed to h is a candidate for cell (r, h mod prime[r]) in every
// row. Because the moduli differ, two keys that collide in one row are
// unlikely to collide in the next. When the prime chain bottoms out the
// remaining rows use modulus 1 and only ever address their first column.
//
// # Insert
//
// Insert scans rows in order and writes into the first candidate that is
// empty or, with Upsert enabled, already holds the key. If every candidate
// holds a different key the table is full for that key.
//
// With Upsert disabled the scan never looks for the existing key: inserting
// a key twice stores a second copy in a later row, and Lookup keeps
// returning the first.
//
// # Lookup
//
// Lookup scans rows in the same order and stops at the first empty
// candidate, reporting the key as missing. Insert always fills the earliest
// free row and cells are never freed, so for a table written only through
// Insert the stop is sound; the table does not verify it, and the scan is
// best read as a probabilistic cut-off rather than an invariant.
//
// # Thread Safety
//
// Tables are not thread-safe. Wrap them in a mutex if shared.
package multirow
