package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docguard/config"
	"docguard/database"
	"docguard/logger"
)

var (
	cfgFile        string
	dbPath         string // Bound to --dbpath flag
	appLogPathFlag string
	runLogPathFlag string
	logLevelFlag   string
)

// Helper function to expand tilde in this package too
func expandTildeCmd(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var rootCmd = &cobra.Command{
	Use:   "docguard",
	Short: "Documentation-governance toolkit for AI-annotated source files",
	Long: `docguard checks that AI-annotated ("documented") source files preserve
every comment of their originals, verbatim. It validates single file pairs or
whole batches, records run history, renders reports, and can serve the run
history over a local HTTP API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize config first, passing flag values for logging config
		if err := config.Init(cfgFile, appLogPathFlag, runLogPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}

		finalDBPath := dbPath // flag wins over config file
		if finalDBPath != "" {
			expandedPath, err := expandTildeCmd(finalDBPath)
			if err != nil {
				logger.Error("Error expanding tilde in --dbpath flag '%s': %v. Using original.", finalDBPath, err)
			} else {
				finalDBPath = expandedPath
			}
		} else {
			finalDBPath = config.AppConfig.Database.Path
			expandedPath, err := expandTildeCmd(finalDBPath)
			if err != nil {
				logger.Error("Error expanding tilde in config DB path '%s': %v. Using original.", finalDBPath, err)
			} else {
				finalDBPath = expandedPath
			}
		}
		if finalDBPath == "" {
			logger.Error("Database path is empty after checking flag and config. Falling back to 'docguard.db' in CWD.")
			finalDBPath = "docguard.db"
		}

		if err := database.InitDB(finalDBPath); err != nil {
			return fmt.Errorf("failed to initialize database at %s: %w", finalDBPath, err)
		}

		isSuppressedCmd := cmd.Name() == "completion" ||
			cmd.Name() == cobra.ShellCompRequestCmd ||
			cmd.Name() == cobra.ShellCompNoDescRequestCmd

		if !isSuppressedCmd {
			logger.Info("Database initialized at: %s (from rootCmd PersistentPreRunE)", finalDBPath)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/docguard/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&runLogPathFlag, "run-log", "", "path for the validation-run log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, ERROR (overrides config/default)")
}
