package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/registry"
	"github.com/halpkg/halpkg/recipe"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [recipe]",
	Short: "Print the build-variant matrix of a recipe",
	Long: `Matrix enumerates every architecture and option combination the recipe
can be built in, one variant per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatrix,
}

var (
	matrixOS    string
	matrixCount bool
)

func init() {
	matrixCmd.Flags().StringVar(&matrixOS, "os", "baremetal", "Target operating system setting")
	matrixCmd.Flags().BoolVar(&matrixCount, "count", false, "Print only the number of variants")
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	rec, err := registry.Builtin().Get(args[0])
	if err != nil {
		return err
	}

	m := recipe.VariantMatrix(rec, matrixOS)
	if matrixCount {
		fmt.Println(m.CombinationCount())
		return nil
	}
	for _, combo := range m.Combinations() {
		fmt.Println(combo)
	}
	return nil
}
