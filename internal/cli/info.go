package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"dnflite/internal/models"
	"dnflite/internal/repo"
	"dnflite/internal/rpmfile"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PACKAGE|FILE.rpm",
		Short: "Show details for a package or a local .rpm file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var pkg models.Package
			if rpmfile.IsRPM(args[0]) {
				pkg, err = rpmfile.Parse(args[0])
				if err != nil {
					return err
				}
			} else {
				name, err := models.ParsePackageName(args[0])
				if err != nil {
					return err
				}
				manager := repo.NewManager(cfg)
				manager.Load(cmd.Context())
				found := manager.FindPackage(name.Name)
				if found == nil {
					return fmt.Errorf("no package named %q in any repository", name.Name)
				}
				pkg = *found
			}

			installed := "no"
			if store, err := openStore(cfg); err == nil {
				if _, ok := store.Get(pkg.Name); ok {
					installed = "yes"
				}
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendRow(table.Row{"Name", pkg.Name.Name})
			t.AppendRow(table.Row{"Arch", pkg.Name.Arch})
			t.AppendRow(table.Row{"Version", pkg.Version})
			t.AppendRow(table.Row{"Summary", pkg.Summary})
			t.AppendRow(table.Row{"Description", pkg.Description})
			if pkg.License != "" {
				t.AppendRow(table.Row{"License", pkg.License})
			}
			if pkg.URL != "" {
				t.AppendRow(table.Row{"URL", pkg.URL})
			}
			if pkg.Size > 0 {
				t.AppendRow(table.Row{"Size", pkg.Size})
			}
			if len(pkg.Dependencies) > 0 {
				t.AppendRow(table.Row{"Requires", len(pkg.Dependencies)})
			}
			t.AppendRow(table.Row{"Installed", installed})
			t.Render()
			return nil
		},
	}
}
