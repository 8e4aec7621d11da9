// Command euler prints the answers to the catalogued puzzles.
//
//	euler run            # every puzzle, one answer per line
//	euler run 3 18       # selected puzzles
//	euler list           # id, slug and title of each puzzle
//	euler triangle FILE  # max path sum of any triangle file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	showPath bool
	jobs     int

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "euler",
	Short: "Solve small numeric puzzles and print their answers",
	Long: `euler runs a fixed catalog of numeric puzzles (multiples, Fibonacci,
prime factors, least common multiple, triangle path sums) and prints each
answer as a single integer on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [id...]",
	Short: "Solve puzzles by id (all when none given)",
	RunE:  runPuzzles,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogued puzzles",
	Args:  cobra.NoArgs,
	RunE:  listPuzzles,
}

var triangleCmd = &cobra.Command{
	Use:   "triangle [file]",
	Short: "Print the maximum path sum of a triangle file",
	Long: `Reads a triangle of integers, one row per line with row r holding r+1
whitespace-separated values, and prints the largest top-to-bottom path sum.`,
	Args: cobra.ExactArgs(1),
	RunE: solveTriangleFile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	runCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of puzzles solved concurrently")
	triangleCmd.Flags().BoolVar(&showPath, "path", false, "Also print the winning column of each row")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(triangleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
