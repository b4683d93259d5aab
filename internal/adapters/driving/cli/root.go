package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/loader/file"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/services"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// documentLoader is replaced in tests.
var documentLoader driven.DocumentLoader = file.NewLoader()

var (
	verbose   bool
	colorMode string
	watchMode bool
)

var rootCmd = &cobra.Command{
	Use:   "minigrep QUERY FILENAME",
	Short: "Print the lines of a file that contain a query",
	Long: `Reads FILENAME in full and prints every line containing QUERY.
Matching is a case-sensitive substring test. Matched lines are printed
in file order with surrounding whitespace trimmed. An empty QUERY
matches every line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	// A --version flag rather than a subcommand: any subcommand would make
	// cobra add help and completion commands that shadow queries.
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("minigrep version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.Flags().StringVar(&colorMode, "color", colorAuto, "highlight matches: auto, always or never")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run the search whenever the file changes")
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Token 0 is the program name, as on a raw argument list.
	cfg, err := domain.NewConfig(append([]string{cmd.Root().Name()}, args...))
	if err != nil {
		return err
	}

	out, err := newLineWriter(cmd.OutOrStdout(), colorMode)
	if err != nil {
		return err
	}

	runner := services.NewRunner(documentLoader, services.NewLineSearcher(), out)
	if watchMode {
		return watch(cmd.Context(), runner, cfg, cmd.OutOrStdout())
	}
	return runner.Run(cmd.Context(), cfg)
}
