/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/waypt/gdbkit/pkg/query"
)

// tracksCmd represents the tracks command
var tracksCmd = &cobra.Command{
	Use:   "tracks <file.gdb>",
	Short: "List the tracks in a GDB file",
	Long: `List the tracks in a GDB file with their color and point count, or
as a JSON array with --json.

Example:
  gdbkit tracks trip.gdb
  gdbkit tracks trip.gdb --json --min-points 100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		name, _ := cmd.Flags().GetString("name")
		minPoints, _ := cmd.Flags().GetInt("min-points")

		r, closeFile, err := openGDB(args[0])
		if err != nil {
			return err
		}
		defer closeFile()

		tracks, err := r.Tracks()
		if err != nil {
			return err
		}

		filter := query.TrackFilter{Name: name, MinPoints: minPoints}
		if err := filter.Validate(); err != nil {
			return err
		}
		tracks = filter.Apply(tracks)

		if asJSON {
			out, err := json.MarshalIndent(tracks, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		}

		for _, t := range tracks {
			color := t.Color
			if color == "" {
				color = "-"
			}
			cmd.Printf("%-24s %-12s %6d points\n", t.Name, color, len(t.Points))
		}
		return nil
	},
}

func init() {
	tracksCmd.Flags().Bool("json", false, "Output as JSON")
	tracksCmd.Flags().String("name", "", "Filter by name substring")
	tracksCmd.Flags().Int("min-points", 0, "Filter by minimum point count")
	rootCmd.AddCommand(tracksCmd)
}
