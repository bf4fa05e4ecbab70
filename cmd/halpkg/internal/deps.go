package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/halpkg/halpkg/internal/profile"
	"github.com/halpkg/halpkg/internal/registry"
	"github.com/halpkg/halpkg/internal/resolve"
)

var depsCmd = &cobra.Command{
	Use:   "deps [recipe]",
	Short: "Print the resolved requirements of a recipe",
	Long: `Deps evaluates a recipe against a platform profile and prints the
flattened requirement list, including transitive requirements of recipes
known to the tool.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeps,
}

var (
	depsProfile string
	depsJSON    bool
)

func init() {
	depsCmd.Flags().StringVarP(&depsProfile, "profile", "p", "", "Platform profile file (required)")
	depsCmd.Flags().BoolVar(&depsJSON, "json", false, "Print requirements as JSON")
	depsCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(depsCmd)
}

type depOut struct {
	Path              string `json:"path"`
	Constraint        string `json:"constraint"`
	TransitiveHeaders bool   `json:"transitive_headers,omitempty"`
	Direct            bool   `json:"direct"`
}

func runDeps(cmd *cobra.Command, args []string) error {
	prof, err := profile.Parse(depsProfile, nil)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	platform := prof.Platform()
	log.Debugf("resolving %s for %s", args[0], platform)

	resolved, err := resolve.Requirements(registry.Builtin(), args[0], platform, prof.Options)
	if err != nil {
		return fmt.Errorf("failed to resolve requirements: %w", err)
	}

	if depsJSON {
		out := make([]depOut, len(resolved))
		for i, r := range resolved {
			out[i] = depOut{
				Path:              r.Path,
				Constraint:        r.Constraint,
				TransitiveHeaders: r.TransitiveHeaders,
				Direct:            r.Direct,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range resolved {
		line := r.Path + "/" + r.Constraint
		if r.TransitiveHeaders {
			line += " (transitive headers)"
		}
		fmt.Println(line)
	}
	return nil
}
