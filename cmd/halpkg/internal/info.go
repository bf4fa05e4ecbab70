package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/registry"
)

var infoCmd = &cobra.Command{
	Use:   "info [recipe]",
	Short: "Print recipe metadata",
	Long:  `Info prints the static metadata of a recipe known to the tool.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	rec, err := registry.Builtin().Get(args[0])
	if err != nil {
		return err
	}
	md := rec.Metadata

	fmt.Printf("name: %s\n", rec.Name)
	fmt.Printf("license: %s\n", md.License)
	if md.Homepage != "" {
		fmt.Printf("homepage: %s\n", md.Homepage)
	}
	if md.URL != "" {
		fmt.Printf("url: %s\n", md.URL)
	}
	if md.Description != "" {
		fmt.Printf("description: %s\n", md.Description)
	}
	if len(md.Topics) > 0 {
		fmt.Printf("topics: %s\n", strings.Join(md.Topics, ", "))
	}
	if len(md.Libs) > 0 {
		fmt.Printf("libs: %s\n", strings.Join(md.Libs, ", "))
	}
	if md.CMakeTarget != "" {
		fmt.Printf("cmake target: %s\n", md.CMakeTarget)
	}
	if len(rec.Options) > 0 {
		fmt.Println("options:")
		for _, name := range rec.Options.Names() {
			fmt.Printf("  %s (default %t)\n", name, rec.Options[name])
		}
	}
	return nil
}
