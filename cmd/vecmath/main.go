// Command vecmath inspects vectors with the vectors library.
//
// Subcommands:
//
//	inspect <file.json>   report size, length, normalized form and pairwise
//	                      distances for {"vectors": [[1, 2], [3, 4, 5]]}
//	calc --from 1,2 --to 4,6
//	                      report the vector, direction and distance between
//	                      two vectors (plus headings when both are 2D)
//
// Flags:
//
//	--format: component format for printed blocks (default %10.4f)
//	--strict: apply the size check of Array receivers to fixed-size
//	          receivers as well (Array receivers are always strict)
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	format string
	strict bool
	from   string
	to     string
)

var rootCmd = &cobra.Command{
	Use:           "vecmath",
	Short:         "Inspect Euclidean vectors",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.json>",
	Short: "Report on every vector in a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read json: %w", err)
		}
		vs, err := parseFile(data)
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), vs, format, strict)
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compare two comma-separated vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseVector(from)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		b, err := parseVector(to)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		return calc(cmd.OutOrStdout(), a, b, format, strict)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "component format for printed vectors")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "apply the strict size check to fixed-size receivers too (Array receivers are always strict)")

	calcCmd.Flags().StringVar(&from, "from", "", "source vector, e.g. 1,2,3")
	calcCmd.Flags().StringVar(&to, "to", "", "target vector, e.g. 4,5,6")
	_ = calcCmd.MarkFlagRequired("from")
	_ = calcCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(inspectCmd, calcCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("vecmath: %v", err)
	}
}
