// Package fileops implements the batch file operations of the fileops tool.
//
// Each operation takes the full list of input files and processes every file
// independently, so a file that cannot be read only affects its own output:
//
//   - XOR folds a file into one block of 2^N bits by XOR-ing its blocks
//   - Mask counts the 4-byte words of a file that contain every bit of a mask
//   - Copy writes N numbered duplicates of each file in parallel
//   - Find searches every file for a literal string in parallel
//
// XOR and Mask run sequentially and report per file. Copy and Find hand one job
// per unit of work to a worker.Supervisor and report aggregate results once the
// whole batch has been drained.
//
// Mask reads words in the platform's native byte order; files are not
// normalized between little- and big-endian hosts.
package fileops
