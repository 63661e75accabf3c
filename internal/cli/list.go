package cli

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			records := store.List()
			if len(records) == 0 {
				logrus.Info("no packages installed")
				return nil
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"NAME", "ARCH", "VERSION", "INSTALLED"})
			for _, rec := range records {
				t.AppendRow(table.Row{
					rec.Package.Name.Name,
					rec.Package.Name.Arch,
					rec.Package.Version,
					rec.InstallTime.Format(time.RFC3339),
				})
			}
			t.Render()
			return nil
		},
	}
}
