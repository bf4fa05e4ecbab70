package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "halpkg",
	Short: "halpkg evaluates recipes for embedded C/C++ packages",
	Long: `halpkg evaluates package recipes for embedded C/C++ libraries against a
target platform profile, producing the requirement list, linker flags and
binary-compatibility identity consumed by the surrounding package manager.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetOutputLevel(log.Ldebug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable verbose output")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
