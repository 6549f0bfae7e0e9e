package fileops

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// Bounds for the N of xorN.
const (
	MinBits = 2
	MaxBits = 6
)

// BlockSize returns the number of bytes that hold 2^bits bits, rounded up.
func BlockSize(bits int) int {
	return ((1 << bits) + 7) / 8
}

// Digest is the XOR of all blocks of one file.
type Digest struct {
	Path string
	Bits int
	// Blocks counts logical blocks. For 2-bit digests every byte is two blocks.
	Blocks int
	Sum    []byte
}

// Empty reports whether the input contained no data.
func (d Digest) Empty() bool {
	return d.Blocks == 0
}

// Hex renders the accumulator: one hex digit for 2-bit digests, otherwise
// two digits per byte of the block.
func (d Digest) Hex() string {
	if d.Bits == 2 {
		return fmt.Sprintf("%01x", d.Sum[0]&0x0F)
	}
	return hex.EncodeToString(d.Sum)
}

// DigestReader folds r into a Digest of 2^bits-bit blocks. A short final block
// is zero-padded. On a read error the digest of the data read so far is
// returned along with the error.
func DigestReader(r io.Reader, bits int) (Digest, error) {
	if bits < MinBits || bits > MaxBits {
		return Digest{}, Usagef(ErrInvalidBits, "got %d", bits)
	}
	size := BlockSize(bits)
	d := Digest{Bits: bits, Sum: make([]byte, size)}
	block := make([]byte, size)
	br := bufio.NewReader(r)

	for {
		n, err := io.ReadFull(br, block)
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return d, nil
			}
			return d, err
		}
		clear(block[n:])

		if bits == 2 {
			d.foldNibbles(block[0])
		} else {
			if d.Blocks == 0 {
				copy(d.Sum, block)
			} else {
				for i := range d.Sum {
					d.Sum[i] ^= block[i]
				}
			}
			d.Blocks++
		}

		switch {
		case err == nil:
		case errors.Is(err, io.ErrUnexpectedEOF):
			return d, nil
		default:
			return d, err
		}
	}
}

// foldNibbles treats the high and low nibble of b as two 4-bit blocks.
// The low nibble of the very first byte overwrites the accumulator instead of
// combining with the high nibble, so a one-byte input yields its low nibble.
func (d *Digest) foldNibbles(b byte) {
	hi, lo := (b>>4)&0x0F, b&0x0F

	if d.Blocks == 0 {
		d.Sum[0] = hi
	} else {
		d.Sum[0] ^= hi
	}
	d.Blocks++

	if d.Blocks == 1 {
		d.Sum[0] = lo
	} else {
		d.Sum[0] ^= lo
	}
	d.Blocks++
}

// DigestFile opens path and digests its contents.
func DigestFile(path string, bits int) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{Path: path, Bits: bits}, err
	}
	defer f.Close()

	d, err := DigestReader(f, bits)
	d.Path = path
	return d, err
}

// XOR digests every file and writes one line per file to w. Files that cannot
// be opened are logged and skipped.
func XOR(w io.Writer, files []string, bits int) error {
	if bits < MinBits || bits > MaxBits {
		return Usagef(ErrInvalidBits, "got %d", bits)
	}

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("Unable to access file %s: %v", path, err)
			continue
		}
		d, err := DigestReader(f, bits)
		f.Close()
		if err != nil {
			log.Printf("File read error occurred in %s: %v", path, err)
		}

		if d.Empty() {
			_, err = fmt.Fprintf(w, "No data in %s\n", path)
		} else {
			_, err = fmt.Fprintf(w, "Computed XOR for %s: %s\n", path, d.Hex())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
