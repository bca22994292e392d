package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fecforge/bchkit/pkg/api"
	"github.com/fecforge/bchkit/pkg/bch"
	"github.com/fecforge/bchkit/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the bchkit REST API server. The code parameters, listen
address, and API key come from the configuration file; a missing file is
bootstrapped with a generated key.

Examples:
  bchkit serve
  bchkit serve --config ./bchkit.yaml --port 9000`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
		} else {
			fieldOrder, _ := cmd.Flags().GetUint("field-order")
			correction, _ := cmd.Flags().GetInt("correction")
			primPoly, _ := cmd.Flags().GetUint32("prim-poly")
			cfg, err = config.BootstrapConfig(configPath, config.Codec{
				FieldOrder:    fieldOrder,
				Correction:    correction,
				PrimitivePoly: primPoly,
			})
			if err != nil {
				cmd.Printf("Error bootstrapping config: %v\n", err)
				return
			}
			cmd.Printf("Created %s with a generated API key\n", configPath)
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Security.APIKey = apiKey
		}

		codec, err := bch.New(bch.Config{
			FieldOrder:    cfg.Codec.FieldOrder,
			MinCorrection: cfg.Codec.Correction,
			PrimitivePoly: cfg.Codec.PrimitivePoly,
		})
		if err != nil {
			cmd.Printf("Error creating codec: %v\n", err)
			return
		}
		defer codec.Close()

		serverConfig := api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.APIKey,
		}

		if err := api.StartServer(codec, serverConfig, cfg.Codec.FieldOrder, cfg.Codec.Correction); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Configuration file (default: platform config dir)")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Bind address (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
}
