package internal

import (
	"fmt"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/pkgid"
	"github.com/halpkg/halpkg/internal/prebuilt"
	"github.com/halpkg/halpkg/internal/profile"
	"github.com/halpkg/halpkg/internal/registry"
)

var extractCmd = &cobra.Command{
	Use:   "extract [archive] [recipe@version]",
	Short: "Unpack a prebuilt package archive into the cache",
	Long: `Extract unpacks a prebuilt .tar.xz package archive into the package
folder for the given recipe, version and platform profile.`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

var extractProfile string

func init() {
	extractCmd.Flags().StringVarP(&extractProfile, "profile", "p", "", "Platform profile file (required)")
	extractCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	name, version := parsePackageArg(args[1])
	if version == "" {
		return fmt.Errorf("missing version in %q, expected recipe@version", args[1])
	}

	rec, err := registry.Builtin().Get(name)
	if err != nil {
		return err
	}
	prof, err := profile.Parse(extractProfile, nil)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	opts := rec.DefaultOptions().Merge(prof.OptionsFor(rec.Name))
	id := pkgid.Compute(rec.Name, prof.Platform(), rec.PackageID(opts))

	dir, err := prebuilt.Install(args[0], name, version, id)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", args[0], err)
	}
	log.Infof("installed %s@%s to %s", name, version, dir)
	fmt.Println(dir)
	return nil
}

func parsePackageArg(arg string) (name, version string) {
	for i := len(arg) - 1; i >= 0; i-- {
		if arg[i] == '@' {
			return arg[:i], arg[i+1:]
		}
	}
	return arg, ""
}
