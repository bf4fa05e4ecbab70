package internal

import (
	"fmt"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/env"
	"github.com/halpkg/halpkg/internal/pkgid"
	"github.com/halpkg/halpkg/internal/profile"
	"github.com/halpkg/halpkg/internal/registry"
)

var flagsCmd = &cobra.Command{
	Use:   "flags [recipe]",
	Short: "Print link flags and libraries for a recipe",
	Long: `Flags prints the libraries and executable link flags a consumer must
pass when linking against the package, for the given platform profile.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlags,
}

var flagsProfile string

func init() {
	flagsCmd.Flags().StringVarP(&flagsProfile, "profile", "p", "", "Platform profile file (required)")
	flagsCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(flagsCmd)
}

func runFlags(cmd *cobra.Command, args []string) error {
	rec, err := registry.Builtin().Get(args[0])
	if err != nil {
		return err
	}
	prof, err := profile.Parse(flagsProfile, nil)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	platform := prof.Platform()

	opts := rec.DefaultOptions().Merge(prof.OptionsFor(rec.Name))
	id := pkgid.Compute(rec.Name, platform, rec.PackageID(opts))
	pkgDir, err := env.PackageDir(rec.Name, "current", id)
	if err != nil {
		return fmt.Errorf("failed to locate package folder: %w", err)
	}
	log.Debugf("package folder: %s", pkgDir)

	for _, lib := range rec.Metadata.Libs {
		fmt.Println("-l" + lib)
	}
	for _, flag := range rec.LinkFlags(platform, pkgDir) {
		fmt.Println(flag)
	}
	return nil
}
