package fileops

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dendrascience/dendra-fileops/worker"
)

// MaxCopies bounds copyN so a batch never exceeds files*15 workers.
const MaxCopies = 15

// Runner runs a batch of jobs to completion. *worker.Supervisor implements it.
type Runner interface {
	Run(ctx context.Context, jobs []worker.Job, onComplete func(worker.Result)) worker.Tally
}

// CopyName returns the path of the index-th copy of path: "_<index>" goes in
// front of the last extension of the file name, or at the end if there is none.
func CopyName(path string, index int) string {
	dir, base := filepath.Split(path)
	suffix := "_" + strconv.Itoa(index)
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		return dir + base[:dot] + suffix + base[dot:]
	}
	return dir + base + suffix
}

// CopyFile streams src into dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error opening dest file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

func copyJob(src, dst string) worker.Job {
	return worker.NewJob(fmt.Sprintf("copy %s -> %s", src, dst), func() worker.Result {
		if err := CopyFile(src, dst); err != nil {
			return worker.Failure(err)
		}
		return worker.Succeeded("")
	})
}

// CopyJobs builds one job per (file, copy index) pair, indexes running 1..n.
func CopyJobs(files []string, n int) []worker.Job {
	jobs := make([]worker.Job, 0, len(files)*n)
	for _, src := range files {
		for i := 1; i <= n; i++ {
			jobs = append(jobs, copyJob(src, CopyName(src, i)))
		}
	}
	return jobs
}

// Copy makes n numbered copies of every file, each copy in its own worker.
// Successful runs print nothing; otherwise the number of failed copies is
// written to w once every worker has finished.
func Copy(ctx context.Context, w io.Writer, r Runner, files []string, n int) (worker.Tally, error) {
	if n < 1 || n > MaxCopies {
		return worker.Tally{}, Usagef(ErrInvalidCopies, "got %d", n)
	}

	tally := r.Run(ctx, CopyJobs(files, n), func(res worker.Result) {
		if res.Err != nil {
			log.Printf("%s: %v", res.Job, res.Err)
		}
	})

	if failures := tally.Failures(); failures > 0 {
		if _, err := fmt.Fprintf(w, "Some copy operations failed (%d failures)\n", failures); err != nil {
			return tally, err
		}
	}
	return tally, nil
}
