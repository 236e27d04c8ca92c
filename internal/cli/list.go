package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asad/blobfetch/internal/core"
)

func init() {
	core.RegisterModule(&commandModule{name: "list", build: newListCommand})
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all blobs in the container",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

// runList prints the full container listing as a table: name, size in KB, and
// the raw last-modified timestamp. Unknown values print as "?".
func runList(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	records, err := rt.client.ListBlobs(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%-60s %10s  %s\n", "Name", "Size", "Last Modified")
	fmt.Println(strings.Repeat("-", 100))
	for _, r := range records {
		size := "?"
		if r.SizeBytes > 0 {
			size = fmt.Sprintf("%.1f KB", float64(r.SizeBytes)/1024)
		}
		modified := r.LastModified
		if modified == "" {
			modified = "?"
		}
		fmt.Printf("%-60s %10s  %s\n", r.Name, size, modified)
	}
	fmt.Printf("\nTotal: %d blob(s)\n", len(records))

	return nil
}
