package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rpn/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive calculator session",
	Long: `Starts the calculator on the terminal.

Modes:
- line (default): type numbers and keys separated by spaces, e.g. "7 3 +".
- --keys: single keystrokes, like the keypad of a pocket calculator.
- --json: NDJSON in and out, for scripts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		keysMode, _ := cmd.Flags().GetBool("keys")

		opts := cli.RunOptions{
			Config:   cfg,
			Headless: headless,
			JSON:     jsonMode,
			Keys:     keysMode,
		}
		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, plain output)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().BoolP("keys", "k", false, "Read single keystrokes from the terminal")

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Run = runCmd.Run
}
