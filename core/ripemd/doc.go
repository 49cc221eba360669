// Package ripemd implements the [RIPEMD] family of hash functions:
// RIPEMD-128, RIPEMD-160, RIPEMD-256 and RIPEMD-320.
//
// All four variants share one incremental engine built around the
// double-line compression function described by Dobbertin, Bosselaers and
// Preneel. A [Hasher] accumulates input across any number of writes, can be
// finalized repeatedly without losing its state, and can export and import
// its complete internal [State].
//
// RIPEMD-128 and RIPEMD-256 are not collision resistant by modern standards.
// This package reproduces the published algorithms bit for bit and makes no
// further security claims.
//
// [RIPEMD]: https://homes.esat.kuleuven.be/~bosselae/ripemd160.html
package ripemd
