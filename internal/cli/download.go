package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asad/blobfetch/internal/core"
	"github.com/asad/blobfetch/internal/logging"
	"github.com/asad/blobfetch/internal/services/blob"
)

func init() {
	core.RegisterModule(&commandModule{name: "download-all", build: newDownloadAllCommand})
	core.RegisterModule(&commandModule{name: "download-since", build: newDownloadSinceCommand})
	core.RegisterModule(&commandModule{name: "download-date", build: newDownloadDateCommand})
	core.RegisterModule(&commandModule{name: "download-range", build: newDownloadRangeCommand})
}

func newDownloadAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download-all",
		Short: "Download every blob",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, blob.FilterAll(), "")
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newDownloadSinceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download-since DATE",
		Short: "Download blobs modified since a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := blob.FilterSince(args[0])
			if err != nil {
				return err
			}
			return runDownload(cmd, filter, fmt.Sprintf("modified since %s", args[0]))
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newDownloadDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download-date DATE",
		Short: "Download blobs modified on an exact UTC date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := blob.FilterExact(args[0])
			if err != nil {
				return err
			}
			return runDownload(cmd, filter, fmt.Sprintf("modified on %s", args[0]))
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newDownloadRangeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download-range START END",
		Short: "Download blobs modified in an inclusive UTC date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := blob.FilterRange(args[0], args[1])
			if err != nil {
				return err
			}
			return runDownload(cmd, filter, fmt.Sprintf("from %s to %s", args[0], args[1]))
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", `output directory (default "downloads")`)
}

// runDownload lists the container, applies the filter, and downloads the
// selection sequentially with one status line per blob. Date arguments were
// validated when the filter was built, so bad input never causes a request.
func runDownload(cmd *cobra.Command, filter blob.DateFilter, label string) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	destDir := rt.cfg.OutputDir
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		destDir = out
	}

	records, err := rt.client.ListBlobs(cmd.Context())
	if err != nil {
		return err
	}

	selected := filter.Apply(records)

	if filter.Scoped() {
		undated := 0
		for _, r := range records {
			if _, ok := r.ModifiedDate(); !ok {
				undated++
			}
		}
		if undated > 0 {
			rt.logger.Warn("skipped records without a usable Last-Modified timestamp",
				logging.Int("count", undated),
			)
		}
	}

	if label != "" {
		fmt.Printf("Found %d blob(s) %s. Downloading...\n", len(selected), label)
	} else {
		fmt.Printf("Found %d blob(s). Downloading...\n", len(selected))
	}

	for _, r := range selected {
		path, err := rt.client.Download(cmd.Context(), r.Name, destDir)
		if err != nil {
			return err
		}
		if filter.Scoped() {
			fmt.Printf("  -> %s (%s)\n", path, r.LastModified)
		} else {
			fmt.Printf("  -> %s\n", path)
		}
	}
	fmt.Println("Done.")

	return nil
}
