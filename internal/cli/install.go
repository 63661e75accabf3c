package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dnflite/internal/db"
	"dnflite/internal/models"
	"dnflite/internal/repo"
	"dnflite/internal/rpmfile"
	"dnflite/internal/utils"
)

// NewInstallCmd creates the install command
func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install PACKAGE...",
		Short: "Record packages as installed",
		Long: `Records packages in the installed-package store. An argument naming
a local .rpm file is read directly; anything else is looked up by name
across the configured repositories. No file contents are installed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			// Repositories are only loaded when an argument actually
			// needs a remote lookup.
			var manager *repo.Manager
			lookup := func(ctx context.Context, name string) *models.Package {
				if manager == nil {
					manager = repo.NewManager(cfg)
					manager.Load(ctx)
				}
				return manager.FindPackage(name)
			}

			for _, arg := range args {
				if err := installOne(cmd.Context(), store, lookup, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func installOne(ctx context.Context, store *db.PackageDB, lookup func(context.Context, string) *models.Package, arg string) error {
	if rpmfile.IsRPM(arg) {
		pkg, err := rpmfile.Parse(arg)
		if err != nil {
			return err
		}
		checksum, err := utils.ChecksumFile(arg)
		if err != nil {
			return err
		}
		record, err := store.Add(pkg, pkg.Files, checksum.SHA256)
		if err != nil {
			return err
		}
		logrus.Infof("installed %s %s from %s (id %s)", pkg.Name, pkg.Version, arg, record.InstallID)
		return nil
	}

	name, err := models.ParsePackageName(arg)
	if err != nil {
		return err
	}
	pkg := lookup(ctx, name.Name)
	if pkg == nil {
		return fmt.Errorf("no package named %q in any repository", name.Name)
	}
	record, err := store.Add(*pkg, pkg.Files, "")
	if err != nil {
		return err
	}
	logrus.Infof("installed %s %s (id %s)", pkg.Name, pkg.Version, record.InstallID)
	return nil
}
