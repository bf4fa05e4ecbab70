package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/pkgid"
	"github.com/halpkg/halpkg/internal/profile"
	"github.com/halpkg/halpkg/internal/registry"
)

var idCmd = &cobra.Command{
	Use:   "id [recipe]",
	Short: "Print the package identity for a recipe",
	Long: `Id prints the reduced option set and identity hash that decide whether
two builds of the package are binary compatible.`,
	Args: cobra.ExactArgs(1),
	RunE: runID,
}

var idProfile string

func init() {
	idCmd.Flags().StringVarP(&idProfile, "profile", "p", "", "Platform profile file (required)")
	idCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(idCmd)
}

func runID(cmd *cobra.Command, args []string) error {
	rec, err := registry.Builtin().Get(args[0])
	if err != nil {
		return err
	}
	prof, err := profile.Parse(idProfile, nil)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	opts := rec.DefaultOptions().Merge(prof.OptionsFor(rec.Name))
	reduced := rec.PackageID(opts)

	for _, name := range reduced.Names() {
		fmt.Printf("%s=%t\n", name, reduced[name])
	}
	fmt.Println(pkgid.Compute(rec.Name, prof.Platform(), reduced))
	return nil
}
