/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file.gdb>",
	Short: "Show the header and record counts of a GDB file",
	Long: `Show the format version, creator and signature of a GDB file,
plus the number of waypoint and track records it holds.

Example:
  gdbkit info trip.gdb`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, closeFile, err := openGDB(args[0])
		if err != nil {
			return err
		}
		defer closeFile()

		header, err := r.Header()
		if err != nil {
			return err
		}
		waypoints, err := r.Waypoints()
		if err != nil {
			return err
		}
		tracks, err := r.Tracks()
		if err != nil {
			return err
		}

		cmd.Printf("Version:    %d\n", header.Version)
		cmd.Printf("Created by: %s\n", header.CreatedBy)
		cmd.Printf("Signed by:  %s\n", header.SignedBy)
		cmd.Printf("Waypoints:  %d\n", len(waypoints))
		cmd.Printf("Tracks:     %d\n", len(tracks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
