// Package repo loads package repositories: each repository runs a fixed
// cascade of metadata locations and falls back to a built-in catalog when
// every candidate fails.
package repo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"dnflite/internal/config"
	"dnflite/internal/fetch"
	"dnflite/internal/metadata"
	"dnflite/internal/models"
	"dnflite/internal/utils"
)

// metadataPaths is the fixed cascade of candidate metadata locations, tried
// in order against the repository base URL.
var metadataPaths = []string{
	"repodata/repomd.xml",
	"repodata/primary.xml.gz",
	"repodata/primary.sqlite.gz",
}

// Repository holds the package set of one configured repository.
type Repository struct {
	Config   config.RepoConfig
	BaseURL  string
	Packages map[string]models.Package

	// Fallback reports that the built-in catalog is in use because no
	// metadata candidate could be loaded.
	Fallback bool

	basearch string
}

// NewRepository builds an unloaded repository. baseURL must already have its
// configuration variables expanded.
func NewRepository(rc config.RepoConfig, baseURL, basearch string) *Repository {
	return &Repository{
		Config:   rc,
		BaseURL:  baseURL,
		Packages: make(map[string]models.Package),
		basearch: basearch,
	}
}

// LoadMetadata fills the repository's package set. Candidates from
// metadataPaths are tried in order; each failure is logged and the cascade
// advances. When every candidate fails the built-in catalog is installed
// instead, so loading never fails outright.
func (r *Repository) LoadMetadata(ctx context.Context, fetcher *fetch.Fetcher) {
	logrus.Infof("loading metadata for repo %s", r.Config.Name)

	for _, relPath := range metadataPaths {
		packages, err := r.loadCandidate(ctx, fetcher, relPath)
		if err != nil {
			logrus.Warnf("candidate %s failed: %v", relPath, err)
			continue
		}
		r.Packages = packages
		r.Fallback = false
		logrus.Infof("repo %s: %d packages from %s", r.Config.Name, len(packages), relPath)
		return
	}

	logrus.Warnf("repo %s: no usable metadata, using built-in catalog", r.Config.Name)
	r.fallbackSet()
}

// loadCandidate fetches one cascade candidate and parses it into a package
// map. Partial parses do not count as success.
func (r *Repository) loadCandidate(ctx context.Context, fetcher *fetch.Fetcher, relPath string) (map[string]models.Package, error) {
	path, err := fetcher.Download(ctx, r.BaseURL, r.Config.Name, relPath)
	if err != nil {
		return nil, r.wrap(models.ErrFetch, err)
	}

	switch {
	case strings.HasSuffix(relPath, "repomd.xml"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, r.wrap(models.ErrFetch, err)
		}
		href, err := metadata.LocatePrimary(bytes.NewReader(data))
		if err != nil {
			return nil, r.wrap(models.ErrLocate, err)
		}
		primaryPath, err := fetcher.Download(ctx, r.BaseURL, r.Config.Name, href)
		if err != nil {
			return nil, r.wrap(models.ErrFetch, err)
		}
		return r.parseFile(primaryPath)

	case strings.HasSuffix(relPath, ".sqlite.gz"):
		// Downloaded so the cache mirrors the repository, but sqlite
		// metadata has no reader here.
		return nil, r.wrap(models.ErrParse, errors.New("sqlite metadata is not supported"))

	default:
		return r.parseFile(path)
	}
}

func (r *Repository) parseFile(path string) (map[string]models.Package, error) {
	data, err := utils.DecompressFile(path)
	if err != nil {
		return nil, r.wrap(models.ErrDecompress, err)
	}

	packages, err := metadata.ParsePrimary(bytes.NewReader(data), r.basearch)
	if err != nil {
		return nil, r.wrap(models.ErrParse, err)
	}
	return packages, nil
}

func (r *Repository) wrap(kind models.ErrorKind, err error) error {
	return &models.MetadataError{Kind: kind, Repo: r.Config.Name, Err: err}
}

func (r *Repository) fallbackSet() {
	r.Packages = make(map[string]models.Package)
	for _, pkg := range FallbackCatalog() {
		r.Packages[pkg.Name.Name] = pkg
	}
	r.Fallback = true
}

// FindPackage looks a package up by bare name.
func (r *Repository) FindPackage(name string) (models.Package, bool) {
	pkg, ok := r.Packages[name]
	return pkg, ok
}

// Search returns the packages whose name, summary, or description contains
// the query, case-insensitively.
func (r *Repository) Search(query string) []models.Package {
	var matches []models.Package
	for _, pkg := range r.Packages {
		if pkg.Matches(query) {
			matches = append(matches, pkg)
		}
	}
	return matches
}
