package fileops

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dendrascience/dendra-fileops/worker"
)

// DecodeEscapes replaces the two-character sequences \n, \t and \0 with the
// bytes they name. The string is scanned once from left to right; any other
// backslash is kept as is.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case '0':
				b.WriteByte(0)
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ContainsLine reports whether any line of r contains pattern. Lines keep
// their trailing newline and may be arbitrarily long.
func ContainsLine(r io.Reader, pattern []byte) (bool, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 && bytes.Contains(line, pattern) {
			return true, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
	}
}

func searchJob(path string, pattern []byte) worker.Job {
	return worker.NewJob("find in "+path, func() worker.Result {
		f, err := os.Open(path)
		if err != nil {
			return worker.Failure(fmt.Errorf("error opening file %s: %w", path, err))
		}
		defer f.Close()

		found, err := ContainsLine(f, pattern)
		switch {
		case found:
			return worker.Succeeded("Match located in: " + path)
		case err != nil:
			return worker.Failure(fmt.Errorf("reading %s: %w", path, err))
		default:
			return worker.Failure(nil)
		}
	})
}

// SearchJobs builds one search job per file.
func SearchJobs(files []string, pattern string) []worker.Job {
	p := []byte(pattern)
	jobs := make([]worker.Job, 0, len(files))
	for _, path := range files {
		jobs = append(jobs, searchJob(path, p))
	}
	return jobs
}

// Find searches every file for pattern, one worker per file. Each match is
// announced on w as its worker is reported; if no file matched, a single
// summary line is written instead. pattern is used literally; decode escape
// sequences with DecodeEscapes first.
func Find(ctx context.Context, w io.Writer, r Runner, files []string, pattern string) (worker.Tally, error) {
	if pattern == "" {
		return worker.Tally{}, ErrEmptyPattern
	}

	var writeErr error
	tally := r.Run(ctx, SearchJobs(files, pattern), func(res worker.Result) {
		if res.Err != nil {
			log.Printf("%s: %v", res.Job, res.Err)
		}
		if res.Note != "" && writeErr == nil {
			_, writeErr = fmt.Fprintln(w, res.Note)
		}
	})
	if writeErr != nil {
		return tally, writeErr
	}

	if !tally.FoundAny() {
		if _, err := fmt.Fprintf(w, "No occurrences of '%s' found in the files.\n", pattern); err != nil {
			return tally, err
		}
	}
	return tally, nil
}
