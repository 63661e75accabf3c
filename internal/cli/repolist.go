package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"dnflite/internal/repo"
)

// NewRepolistCmd creates the repolist command
func NewRepolistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repolist",
		Short: "List configured repositories and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			manager := repo.NewManager(cfg)
			manager.Load(cmd.Context())

			loaded := make(map[string]*repo.Repository)
			for _, r := range manager.Repos() {
				loaded[r.Config.Name] = r
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"REPO", "ENABLED", "PACKAGES", "SOURCE"})
			for _, rc := range cfg.Repos {
				r, ok := loaded[rc.Name]
				if !ok {
					t.AppendRow(table.Row{rc.Name, "no", 0, "-"})
					continue
				}
				source := "metadata"
				if r.Fallback {
					source = "builtin"
				}
				t.AppendRow(table.Row{rc.Name, "yes", len(r.Packages), source})
			}
			t.Render()
			return nil
		},
	}
}
