// Package rlnc implements the core of a Random Linear Network Coding
// engine over GF(2^8): a Source that emits an unbounded stream of random
// linear combinations of a set of payload packets, and a Sink that
// incrementally reconstructs the originals by accumulating innovative
// combinations and running an online Gauss-Jordan elimination over a
// sparse, pivot-indexed system.
//
// The package is a pure, single-threaded, in-memory algebra layer. It does
// not define a wire format, perform network I/O, or retry anything; a
// caller wishing to transmit a Combination serializes its
// (component index, coefficient) pairs plus Data()[:CodedSize()] itself,
// and a receiver reconstructs one with SetCodedData followed by one
// AddComponent call per pair.
package rlnc
