/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/waypt/gdbkit/pkg/api"
	"github.com/waypt/gdbkit/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <file.gdb>",
	Short: "Serve a decoded GDB file over HTTP",
	Long: `Start the gdbkit REST API server over one decoded GDB file.

The decoded collections are served read-only under /api/v1, with
Prometheus metrics on /metrics. An API key is optional; when set,
requests must carry it in the X-API-Key header.

Examples:
  gdbkit serve trip.gdb --port 8080
  gdbkit serve trip.gdb --config gdbkit.yaml --api-key mysecret`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind = bind
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = apiKey
		}

		r, closeFile, err := openGDB(args[0])
		if err != nil {
			return err
		}
		defer closeFile()

		return api.StartServer(r, api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.APIKey,
		})
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Path to a gdbkit config file")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key (empty disables auth)")
	rootCmd.AddCommand(serveCmd)
}
