package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dnflite/internal/models"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PACKAGE...",
		Short: "Remove packages from the installed-package store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			for _, arg := range args {
				name, err := models.ParsePackageName(arg)
				if err != nil {
					return err
				}
				if err := store.Remove(name); err != nil {
					return err
				}
				logrus.Infof("removed %s", name)
			}
			return nil
		},
	}
}
