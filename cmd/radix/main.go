// Command radix computes composition tensors over radical sets and
// renders them as matrices (rank 2) or super-diagonals (rank 3+).
//
// Examples:
//
//	radix                       # Wu Xing (Five Elements), rank 2
//	radix --rank 3              # Wu Xing triple compositions
//	radix --radicals 日月       # custom radicals, sun and moon
//	radix --sets my.yaml --set 四象 --rank 2
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hanzikit/radicalgebra/chardb"
	"github.com/hanzikit/radicalgebra/dataset"
	"github.com/hanzikit/radicalgebra/radical"
	"github.com/hanzikit/radicalgebra/tensor"
)

var (
	flagRank     int
	flagRadicals string
	flagSetsFile string
	flagSetName  string
	flagDataFile string
	flagVerbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Tensor algebra on Chinese radicals",
	Long: `radix combines the radicals of a set pairwise (or in higher ranks)
and looks up every character the composition database knows for each
combination. Rank 2 renders the full matrix; higher ranks render the
super-diagonal (each radical repeated rank times).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		if flagVerbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagRank, "rank", 2, "tensor rank (2-8)")
	rootCmd.Flags().StringVar(&flagRadicals, "radicals", "", "custom radicals, e.g. 日月 (default: Wu Xing 金木水火土)")
	rootCmd.Flags().StringVar(&flagSetsFile, "sets", "", "YAML file with named radical sets")
	rootCmd.Flags().StringVar(&flagSetName, "set", "", "pick a named set from --sets")
	rootCmd.Flags().StringVar(&flagDataFile, "data", "", "cjkvi-ids file to index instead of the embedded extract")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	set, err := resolveSet()
	if err != nil {
		return err
	}

	db, err := resolveDatabase()
	if err != nil {
		return err
	}

	logger.Debug("computing outer product",
		zap.String("set", set.String()),
		zap.Int("rank", flagRank),
		zap.Int("records", db.Len()),
	)

	res, err := tensor.OuterProductWith(db, set, flagRank)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Radicals: %s (%s)\n", spaced(set.Runes()), set.Name())
	fmt.Fprintf(out, "Rank: %d\n", flagRank)

	if flagRank == 2 {
		err = renderMatrix(out, res)
	} else {
		err = renderDiagonal(out, res)
	}
	if err != nil {
		return err
	}

	return renderNotable(out, res)
}

// resolveSet picks the radical set: --radicals beats --sets/--set beats
// the Wu Xing default.
func resolveSet() (*radical.Set, error) {
	if flagRadicals != "" {
		return radical.NewSetFromString("custom", flagRadicals)
	}
	if flagSetsFile != "" {
		if flagSetName == "" {
			return nil, fmt.Errorf("--sets requires --set to pick a named set")
		}

		return loadNamedSet(flagSetsFile, flagSetName)
	}

	return radical.WuXing(), nil
}

// resolveDatabase returns the shared embedded database, or indexes a
// caller-supplied cjkvi-ids file.
func resolveDatabase() (*chardb.Database, error) {
	if flagDataFile == "" {
		return chardb.Shared(), nil
	}

	f, err := os.Open(flagDataFile)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	records, err := dataset.Parse(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("indexing custom dataset", zap.String("path", flagDataFile), zap.Int("records", len(records)))

	return chardb.New(records, chardb.WithLogger(logger)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
