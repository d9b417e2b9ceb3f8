/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/waypt/gdbkit/pkg/query"
)

// waypointsCmd represents the waypoints command
var waypointsCmd = &cobra.Command{
	Use:   "waypoints <file.gdb>",
	Short: "List the waypoints in a GDB file",
	Long: `List the waypoints in a GDB file, one line per waypoint, or as a
JSON array with --json.

Example:
  gdbkit waypoints trip.gdb
  gdbkit waypoints trip.gdb --json --shortname camp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		shortname, _ := cmd.Flags().GetString("shortname")

		r, closeFile, err := openGDB(args[0])
		if err != nil {
			return err
		}
		defer closeFile()

		waypoints, err := r.Waypoints()
		if err != nil {
			return err
		}

		filter := query.WaypointFilter{Shortname: shortname}
		waypoints = filter.Apply(waypoints)

		if asJSON {
			out, err := json.MarshalIndent(waypoints, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		}

		for _, w := range waypoints {
			cmd.Printf("%-16s %10.6f %11.6f", w.Shortname, w.Lat, w.Lon)
			if w.Altitude != nil {
				cmd.Printf("  %8.1fm", *w.Altitude)
			}
			cmd.Println()
		}
		return nil
	},
}

func init() {
	waypointsCmd.Flags().Bool("json", false, "Output as JSON")
	waypointsCmd.Flags().String("shortname", "", "Filter by shortname substring")
	rootCmd.AddCommand(waypointsCmd)
}
