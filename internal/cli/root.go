package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asad/blobfetch/internal/config"
	"github.com/asad/blobfetch/internal/core"
	"github.com/asad/blobfetch/internal/httpx"
	"github.com/asad/blobfetch/internal/logging"
	"github.com/asad/blobfetch/internal/services/blob"
)

var (
	// Version is set at build time via ldflags.
	// Example: go build -ldflags "-X github.com/asad/blobfetch/internal/cli.Version=1.0.0"
	Version = "dev"

	// sasURLFlag overrides the BASE_SAS_URL environment default.
	sasURLFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "blobfetch",
	Short: "List and download blobs from a container SAS URL",
	Long: `Blobfetch enumerates the blobs in an object-storage container through a
pre-signed SAS URL and downloads them in bulk, optionally filtered by
last-modified date (exact day, since a cutoff, or an inclusive range).

The SAS URL comes from the --sas-url flag or the BASE_SAS_URL environment
variable; a .env file in the working directory supplies defaults for
variables that are not already set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blobfetch version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sasURLFlag, "sas-url", "", "full SAS URL (overrides BASE_SAS_URL)")
	rootCmd.AddCommand(versionCmd)
}

// Execute is the entry point for the CLI. It assembles the root command from
// the registered command modules and runs it. Validation failures are usage
// errors: message plus usage on stderr, exit code 2. Anything else is fatal
// with exit code 1.
func Execute() {
	for _, m := range core.RegisteredModules() {
		rootCmd.AddCommand(m.Command())
	}

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	if blob.IsValidation(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// commandModule adapts a command constructor to the core.Module interface so
// each subcommand file can register itself at init time.
type commandModule struct {
	name  string
	build func() *cobra.Command
}

func (m *commandModule) Name() string {
	return m.name
}

func (m *commandModule) Command() *cobra.Command {
	return m.build()
}

// runtime bundles everything a command needs once flags are parsed.
type runtime struct {
	cfg    *config.Config
	logger logging.Logger
	client *blob.Client
}

// setup loads configuration, resolves the SAS URL, and builds the shared
// container client. It runs per invocation, after flag parsing, so the
// --sas-url override is already in place.
func setup() (*runtime, error) {
	cfg := config.Load()
	if sasURLFlag != "" {
		cfg.SASURL = sasURLFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.SASURL == "" {
		return nil, &blob.ValidationError{Message: "no SAS URL found: set BASE_SAS_URL in .env or pass --sas-url"}
	}

	logger := logging.NewLogger(cfg.LogLevel)

	client, err := blob.NewClient(cfg.SASURL, httpx.NewClient(cfg, logger), cfg.ChunkSize, logger)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logger, client: client}, nil
}
