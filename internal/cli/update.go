package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dnflite/internal/repo"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh metadata for all enabled repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			manager := repo.NewManager(cfg)
			manager.Update(cmd.Context())

			total := 0
			for _, r := range manager.Repos() {
				total += len(r.Packages)
			}
			logrus.Infof("updated %d repositories, %d packages known", len(manager.Repos()), total)
			return nil
		},
	}
}
