package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dnflite/internal/config"
	"dnflite/internal/db"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dnflite",
		Short: "Minimal client for RPM package repositories",
		Long: `Dnflite fetches repository metadata (repomd.xml and the primary
package listing), keeps a local record of installed packages, and
answers queries against both.

It resolves no dependencies, verifies no signatures and unpacks no
package payloads; it is a metadata client, not a package manager.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")

	// Add subcommands
	rootCmd.AddCommand(
		NewInstallCmd(),
		NewRemoveCmd(),
		NewUpdateCmd(),
		NewSearchCmd(),
		NewListCmd(),
		NewInfoCmd(),
		NewRepolistCmd(),
	)

	return rootCmd
}

// loadConfig reads the configuration selected by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// openStore opens the installed-package store for the given configuration.
func openStore(cfg *config.Config) (*db.PackageDB, error) {
	return db.Open(cfg.DatabaseDir)
}
