/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waypt/gdbkit/pkg/gdb"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gdbkit",
	Short: "gdbkit - Garmin GDB decoding toolkit",
	Long: `gdbkit decodes Garmin MapSource/BaseCamp GDB archives into
waypoint and track data, for inspection, JSON export, import into a
local store, or serving over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// openGDB opens the file and wraps it in a decoder. The caller owns
// the returned closer.
func openGDB(path string) (*gdb.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return gdb.NewReader(f), f.Close, nil
}
