// Package cli implements the collutil command line interface.
package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	collutils "github.com/deadlyengineer/go-collection-utils"
	"github.com/deadlyengineer/go-collection-utils/internal/records"
)

// Version is the collutil version. It is overridden at build time.
var Version = "dev"

// CLI constants
const (
	CmdGroup      = "group"
	CmdVersion    = "version"
	FlagKey       = "key"
	FlagAgg       = "agg"
	FlagField     = "field"
	FlagDelimiter = "delimiter"
	FlagPrefix    = "prefix"
	FlagSuffix    = "suffix"
	FlagParallel  = "parallel"
	FlagWorkers   = "workers"
	FlagVerbose   = "verbose"
)

// groupFlags holds the flag values of the group command.
type groupFlags struct {
	key       string
	agg       string
	field     string
	delimiter string
	prefix    string
	suffix    string
	parallel  bool
	workers   int
}

// NewRootCommand returns the collutil root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	verbose := false

	rootCmd := &cobra.Command{
		Use:   "collutil",
		Short: "collutil - group and aggregate records from YAML or JSON files",
		Long: `collutil groups the records of a YAML or JSON file by a field and aggregates each group.

Examples:
  collutil group --key category items.yaml                        # count items per category
  collutil group --key category --agg sum --field price items.yaml
  collutil group --key dept --agg join --field name --delimiter ", " employees.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, FlagVerbose, "v", false, "Log diagnostics to stderr")

	logger := func(cmd *cobra.Command) *log.Logger {
		if !verbose {
			return log.New(io.Discard, "", 0)
		}

		return log.New(cmd.ErrOrStderr(), "collutil: ", 0)
	}

	rootCmd.AddCommand(newGroupCommand(logger), newVersionCommand())

	return rootCmd
}

func newGroupCommand(logger func(cmd *cobra.Command) *log.Logger) *cobra.Command {
	flags := groupFlags{}

	groupCmd := &cobra.Command{
		Use:   CmdGroup + " FILE",
		Short: "Group records by a field and aggregate each group",
		Long: fmt.Sprintf(`Group the records of FILE by the value of --key and aggregate each group.

Supported aggregations: %v
All aggregations except count need --field. The result is printed as YAML.`, Aggregations),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroupCmd(cmd, logger(cmd), args[0], flags)
		},
	}

	groupCmd.Flags().StringVarP(&flags.key, FlagKey, "k", "", "Field to group by")
	groupCmd.Flags().StringVarP(&flags.agg, FlagAgg, "a", AggCount, "Aggregation to apply to each group")
	groupCmd.Flags().StringVarP(&flags.field, FlagField, "f", "", "Field to aggregate")
	groupCmd.Flags().StringVar(&flags.delimiter, FlagDelimiter, "", "Delimiter for the join aggregation")
	groupCmd.Flags().StringVar(&flags.prefix, FlagPrefix, "", "Prefix for the join aggregation")
	groupCmd.Flags().StringVar(&flags.suffix, FlagSuffix, "", "Suffix for the join aggregation")
	groupCmd.Flags().BoolVarP(&flags.parallel, FlagParallel, "p", false, "Aggregate in parallel")
	groupCmd.Flags().IntVarP(&flags.workers, FlagWorkers, "w", 0, "Number of workers for parallel aggregation (default: number of CPUs)")

	_ = groupCmd.MarkFlagRequired(FlagKey)

	return groupCmd
}

func runGroupCmd(cmd *cobra.Command, logger *log.Logger, path string, flags groupFlags) error {
	recs, err := records.Load(path)
	if err != nil {
		return err
	}

	logger.Printf("loaded %d records from %s", len(recs), path)

	query := groupQuery{
		key:   flags.key,
		agg:   flags.agg,
		field: flags.field,
		joiner: collutils.Joiner{
			Delimiter: flags.delimiter,
			Prefix:    flags.prefix,
			Suffix:    flags.suffix,
		},
		opts: []collutils.Option{
			collutils.WithWorkers(flags.workers),
		},
	}

	if flags.parallel {
		query.opts = append(query.opts, collutils.WithParallel())
	}

	result, err := aggregate(cmd.Context(), recs, query)
	if err != nil {
		return err
	}

	logger.Printf("aggregated %d groups using %s", len(result), flags.agg)

	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
