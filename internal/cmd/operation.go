package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dendrascience/dendra-fileops/fileops"
)

// Kind names one of the four operations.
type Kind string

const (
	KindXOR  Kind = "xor"
	KindMask Kind = "mask"
	KindCopy Kind = "copy"
	KindFind Kind = "find"
)

// Operation is a parsed command line: what to run, on which files, with which argument.
type Operation struct {
	Kind  Kind
	Files []string

	// N is the bit-width exponent for xor and the copy count for copy.
	N       int
	Mask    uint32
	Pattern string
}

// ParseOperation reads "<files...> <operation> [arg]". The trailing tokens are
// tried in a fixed order: xor<N> as the last argument, then mask <hex>, then
// copy<N>, then find <string>.
func ParseOperation(args []string) (Operation, error) {
	if len(args) < 2 {
		return Operation{}, fmt.Errorf("%w: need at least one file and an operation", fileops.ErrMissingArgument)
	}
	last := args[len(args)-1]
	prev := args[len(args)-2]

	switch {
	case strings.HasPrefix(last, string(KindXOR)):
		n, err := suffixNumber(last, KindXOR)
		if err != nil {
			return Operation{}, fileops.Usagef(fileops.ErrInvalidBits, "%v", err)
		}
		if n < fileops.MinBits || n > fileops.MaxBits {
			return Operation{}, fileops.Usagef(fileops.ErrInvalidBits, "got %d", n)
		}
		return Operation{Kind: KindXOR, Files: args[:len(args)-1], N: n}, nil

	case prev == string(KindMask):
		if len(args) < 3 {
			return Operation{}, fmt.Errorf("%w: mask needs at least one file", fileops.ErrMissingArgument)
		}
		mask, err := fileops.ParseMask(last)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: KindMask, Files: args[:len(args)-2], Mask: mask}, nil

	case strings.HasPrefix(last, string(KindCopy)):
		n, err := suffixNumber(last, KindCopy)
		if err != nil {
			return Operation{}, fileops.Usagef(fileops.ErrInvalidCopies, "%v", err)
		}
		if n < 1 || n > fileops.MaxCopies {
			return Operation{}, fileops.Usagef(fileops.ErrInvalidCopies, "got %d", n)
		}
		return Operation{Kind: KindCopy, Files: args[:len(args)-1], N: n}, nil

	case prev == string(KindFind):
		if len(args) < 3 {
			return Operation{}, fmt.Errorf("%w: find needs at least one file", fileops.ErrMissingArgument)
		}
		pattern := fileops.DecodeEscapes(last)
		if pattern == "" {
			return Operation{}, fileops.ErrEmptyPattern
		}
		return Operation{Kind: KindFind, Files: args[:len(args)-2], Pattern: pattern}, nil
	}

	return Operation{}, fmt.Errorf("%w: %q", fileops.ErrUnknownOperation, last)
}

func suffixNumber(token string, kind Kind) (int, error) {
	digits := strings.TrimPrefix(token, string(kind))
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%q is not %s followed by a number", token, kind)
	}
	return n, nil
}

func runOperation(ctx context.Context, w io.Writer, op Operation, r fileops.Runner) error {
	switch op.Kind {
	case KindXOR:
		return fileops.XOR(w, op.Files, op.N)
	case KindMask:
		return fileops.Mask(w, op.Files, op.Mask)
	case KindCopy:
		_, err := fileops.Copy(ctx, w, r, op.Files, op.N)
		return err
	case KindFind:
		_, err := fileops.Find(ctx, w, r, op.Files, op.Pattern)
		return err
	default:
		return fmt.Errorf("%w: %q", fileops.ErrUnknownOperation, op.Kind)
	}
}
