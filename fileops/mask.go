package fileops

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// WordSize is the size of one record read by the mask scanner.
const WordSize = 4

// ParseMask parses a 32-bit hexadecimal mask with an optional 0x prefix.
func ParseMask(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" || len(digits) > 8 {
		return 0, Usagef(ErrInvalidMask, "%q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, Usagef(ErrInvalidMask, "%q", s)
	}
	return uint32(v), nil
}

// Matches reports whether every bit set in mask is also set in word.
func Matches(word, mask uint32) bool {
	return word&mask == mask
}

// ScanReader reads r as native-order 32-bit words and calls onMatch for every
// word that matches mask. A trailing partial word is ignored. It returns the
// number of matches.
func ScanReader(r io.Reader, mask uint32, onMatch func(word uint32) error) (int, error) {
	br := bufio.NewReader(r)
	var buf [WordSize]byte
	matches := 0
	for {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return matches, nil
			}
			return matches, err
		}
		word := binary.NativeEndian.Uint32(buf[:])
		if !Matches(word, mask) {
			continue
		}
		matches++
		if onMatch != nil {
			if err := onMatch(word); err != nil {
				return matches, err
			}
		}
	}
}

// Mask scans every file and writes the matching words and a per-file count to
// w. Files that cannot be opened are logged and skipped.
func Mask(w io.Writer, files []string, mask uint32) error {
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("Could not open file %s: %v", path, err)
			continue
		}

		if _, err := fmt.Fprintf(w, "Checking file %s with mask: 0x%08X\n", path, mask); err != nil {
			f.Close()
			return err
		}

		var writeErr error
		n, err := ScanReader(f, mask, func(word uint32) error {
			_, writeErr = fmt.Fprintf(w, "Value: 0x%08X, Mask: 0x%08X\n", word, mask)
			return writeErr
		})
		f.Close()
		if writeErr != nil {
			return writeErr
		}
		if err != nil {
			log.Printf("File read error occurred in %s: %v", path, err)
		}

		if _, err := fmt.Fprintf(w, "found %d matches in %s\n", n, path); err != nil {
			return err
		}
	}
	return nil
}
