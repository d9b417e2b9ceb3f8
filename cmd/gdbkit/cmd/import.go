/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/waypt/gdbkit/pkg/storage"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.gdb>",
	Short: "Import a GDB file into a local store",
	Long: `Decode a GDB file and persist its waypoints and tracks in a local
Pebble-backed store.

Example:
  gdbkit import trip.gdb --data-dir ./data`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")

		r, closeFile, err := openGDB(args[0])
		if err != nil {
			return err
		}
		defer closeFile()

		store, err := storage.Open(dataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		counts, err := store.Import(r)
		if err != nil {
			return err
		}

		cmd.Printf("Imported %d waypoints and %d tracks into %s\n",
			counts.Waypoints, counts.Tracks, dataDir)
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("data-dir", "d", "./data", "Data directory for the store")
	rootCmd.AddCommand(importCmd)
}
