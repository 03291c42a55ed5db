package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"docguard/api"
	"docguard/config"
	"docguard/logger"
)

var standaloneServerPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the run-history HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		portToUse := standaloneServerPort
		if portToUse == "" {
			portToUse = config.AppConfig.Server.Port
		}
		if portToUse == "" {
			portToUse = "8691"
		}

		apiRouter := api.NewRouter()
		if apiRouter == nil {
			logger.Fatal("Server Command: api.NewRouter() returned nil!")
			return
		}

		mainMux := http.NewServeMux()
		mainMux.Handle("/api/", http.StripPrefix("/api", apiRouter))
		mainMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		logger.Info("Serving docguard API on :%s", portToUse)
		if err := http.ListenAndServe(":"+portToUse, mainMux); err != nil {
			logger.Fatal("Could not start server: %v", err)
		}
	},
}

func init() {
	serverCmd.Flags().StringVarP(&standaloneServerPort, "port", "p", "", "port for the server to listen on (default: server.port from config)")
	rootCmd.AddCommand(serverCmd)
}
