package repo

import "dnflite/internal/models"

// FallbackCatalog returns the built-in package set used when a repository's
// metadata cannot be fetched or parsed. The catalog is rebuilt on every call
// so callers may modify the result.
func FallbackCatalog() []models.Package {
	entries := []struct {
		name        string
		version     string
		description string
	}{
		{"nano", "2.9.8", "A small text editor for consoles"},
		{"vim", "8.2", "Vi Improved - enhanced vi editor"},
		{"curl", "7.61.1", "Tool for transferring data with URL syntax"},
		{"rust", "1.70.0", "The Rust programming language"},
		{"firefox", "115.0", "Mozilla Firefox Web browser"},
		{"git", "2.43.0", "Fast Version Control System"},
		{"python3", "3.11.5", "Python programming language"},
	}

	packages := make([]models.Package, 0, len(entries))
	for _, e := range entries {
		packages = append(packages, models.Package{
			Name:        models.PackageName{Name: e.name, Arch: models.DefaultArch},
			Version:     models.Version{Version: e.version, Release: "1.fc39"},
			Description: e.description,
		})
	}
	return packages
}
