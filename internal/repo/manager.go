package repo

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"dnflite/internal/config"
	"dnflite/internal/fetch"
	"dnflite/internal/models"
)

// Manager aggregates all configured repositories and answers package
// lookups across them.
type Manager struct {
	cfg     *config.Config
	fetcher *fetch.Fetcher
	repos   map[string]*Repository
}

// NewManager builds a manager for the given configuration. Repositories are
// not loaded until Load is called.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:     cfg,
		fetcher: fetch.NewFetcher(cfg.CacheDir),
		repos:   make(map[string]*Repository),
	}
}

// Load fills every enabled repository's package set. Disabled repositories
// are skipped entirely.
func (m *Manager) Load(ctx context.Context) {
	for _, rc := range m.cfg.Repos {
		if !rc.Enabled {
			logrus.Debugf("repo %s disabled, skipping", rc.Name)
			continue
		}
		r := NewRepository(rc, m.cfg.ExpandURL(rc.BaseURL), m.cfg.BaseArch)
		r.LoadMetadata(ctx, m.fetcher)
		m.repos[rc.Name] = r
	}
}

// Update discards all loaded package sets and reloads every enabled
// repository from its source.
func (m *Manager) Update(ctx context.Context) {
	m.repos = make(map[string]*Repository)
	m.Load(ctx)
}

// FindPackage returns the first match for a bare package name, searching
// repositories in configuration order. It returns nil when no repository
// carries the name.
func (m *Manager) FindPackage(name string) *models.Package {
	for _, rc := range m.cfg.Repos {
		r, ok := m.repos[rc.Name]
		if !ok {
			continue
		}
		if pkg, ok := r.FindPackage(name); ok {
			return &pkg
		}
	}
	return nil
}

// Search collects matches from every loaded repository, sorted by package
// name. A name appearing in several repositories appears once per
// repository.
func (m *Manager) Search(query string) []models.Package {
	var matches []models.Package
	for _, rc := range m.cfg.Repos {
		if r, ok := m.repos[rc.Name]; ok {
			matches = append(matches, r.Search(query)...)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name.Name < matches[j].Name.Name
	})
	return matches
}

// Repos returns the loaded repositories in configuration order.
func (m *Manager) Repos() []*Repository {
	var repos []*Repository
	for _, rc := range m.cfg.Repos {
		if r, ok := m.repos[rc.Name]; ok {
			repos = append(repos, r)
		}
	}
	return repos
}
