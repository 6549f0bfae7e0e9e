// Package main provides the fileops command-line interface.
//
// fileops applies one operation to a list of files:
//
//	fileops FILE... xor<N>         XOR digest of 2^N-bit blocks (N=2..6)
//	fileops FILE... mask <hex>     count 4-byte words containing every bit of a mask
//	fileops FILE... copy<N>        N numbered copies of each file, made in parallel
//	fileops FILE... find <string>  parallel literal search, with \n \t \0 escapes
//
// The process exits with status 1 once an operation has been dispatched, and
// with -1 (255) on a usage error.
package main
