package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rpn/internal/cli"
	"github.com/aretw0/rpn/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpn",
	Short: "rpn is a Reverse Polish Notation calculator",
	Long: `rpn is a stack calculator in the tradition of the HP pocket models.
Numbers go on the stack; operators take their operands from it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// settingFlags maps persistent flags onto config keys.
var settingFlags = []string{"locale", "decimal", "grouping", "angle", "debug"}

// loadConfig resolves the settings for a command: file and environment
// first, then every flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	overrides := map[string]any{}
	for _, name := range settingFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		overrides[name] = f.Value.String()
	}
	return cli.LoadConfig(path, overrides)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("locale", "", "BCP 47 locale deciding the separators (e.g. pt-BR, en-US)")
	rootCmd.PersistentFlags().String("decimal", "", "Decimal separator override")
	rootCmd.PersistentFlags().String("grouping", "", "Grouping separator override")
	rootCmd.PersistentFlags().String("angle", "", "Initial angle unit: DEG, RAD or GRAD")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every operation to stderr")
}
