// Package cmd provides the command-line interface implementation for fileops.
//
// The CLI takes a list of files followed by one operation:
//   - xor<N>: block-wise XOR digest of each file
//   - mask <hex>: count of 4-byte words matching a bit mask
//   - copy<N>: N numbered copies of each file, made in parallel
//   - find <string>: parallel literal search across the files
//
// It uses the Cobra library for argument and flag handling and Fang for
// styling, version output and interrupt handling. ParseOperation turns the
// trailing arguments into an Operation; the fileops package does the work and
// the worker package runs the parallel operations.
package cmd
