package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dnflite/internal/repo"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search packages by name, summary or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			manager := repo.NewManager(cfg)
			manager.Load(cmd.Context())

			matches := manager.Search(args[0])
			if len(matches) == 0 {
				logrus.Infof("no packages match %q", args[0])
				return nil
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"NAME", "ARCH", "VERSION", "SUMMARY"})
			for _, pkg := range matches {
				t.AppendRow(table.Row{pkg.Name.Name, pkg.Name.Arch, pkg.Version, pkg.Summary})
			}
			t.Render()
			return nil
		},
	}
}
