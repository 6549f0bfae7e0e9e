package cmd

import (
	"fmt"

	"github.com/dendrascience/dendra-fileops/fileops"
	"github.com/dendrascience/dendra-fileops/version"
	"github.com/dendrascience/dendra-fileops/worker"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the fileops CLI.
// The operation is given as the trailing argument(s), after the file list.
func NewRootCmd() *cobra.Command {
	var cfg worker.Config

	rootCmd := &cobra.Command{
		Use:   "fileops FILE... OPERATION [ARG]",
		Short: "fileops - batch XOR digests, mask counts, copies and searches over files",
		Long: `fileops applies one operation to every file in a list.

Operations (always given after the files):
  xor<N>         XOR blocks of 2^N bits (N=2,3,4,5,6) and print the result per file
  mask <hex>     count 4-byte integers matching the mask
  copy<N>        create N numbered copies of each file (N=1..15), in parallel
  find <string>  search for a string in the files, in parallel
                 (\n, \t and \0 in the string are decoded)

Use -- before the file list if a file name or search string starts with '-'.`,
		Example: `  fileops a.bin b.bin xor3
  fileops dump.bin mask 0x000000FF
  fileops notes.txt copy3
  fileops *.log find 'error\tcode'`,
		Version: version.GetFullVersion(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("%w: need at least one file and an operation", fileops.ErrMissingArgument)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := ParseOperation(args)
			if err != nil {
				return err
			}
			return runOperation(cmd.Context(), cmd.OutOrStdout(), op, worker.New(cfg))
		},
	}

	rootCmd.Flags().IntVarP(&cfg.MaxWorkers, "max-workers", "w", 0, "Maximum number of concurrently running workers (0 = unbounded)")
	rootCmd.Flags().DurationVar(&cfg.PollInterval, "poll-interval", worker.DefaultPollInterval, "Pause between worker polling passes")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every worker start and completion")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", fileops.ErrUsage, err)
	})

	return rootCmd
}
