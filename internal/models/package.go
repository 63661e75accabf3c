package models

import (
	"fmt"
	"strings"
)

// DefaultArch is assumed when an identifier carries no architecture.
const DefaultArch = "x86_64"

// PackageName identifies a package by name and architecture
type PackageName struct {
	Name string `json:"name"`
	Arch string `json:"arch"`
}

// NewPackageName builds a PackageName, defaulting the architecture when empty
func NewPackageName(name, arch string) (PackageName, error) {
	if name == "" {
		return PackageName{}, &InvalidPackageError{Field: "name", Value: name}
	}
	if arch == "" {
		arch = DefaultArch
	}
	return PackageName{Name: name, Arch: arch}, nil
}

// ParsePackageName splits a bare identifier on its first dot into name and
// architecture, so "vim.aarch64" becomes vim/aarch64 and "vim" becomes
// vim/x86_64.
func ParsePackageName(s string) (PackageName, error) {
	name, arch := s, ""
	if i := strings.Index(s, "."); i >= 0 {
		name, arch = s[:i], s[i+1:]
	}
	return NewPackageName(name, arch)
}

func (n PackageName) String() string {
	return n.Name + "." + n.Arch
}

// Version holds an epoch/version/release triple
type Version struct {
	Epoch   uint32 `json:"epoch"`
	Version string `json:"version"`
	Release string `json:"release"`
}

// ParseVersion splits free text on the first dash into version and release.
// A missing release defaults to "1". The epoch is never derived from the
// text form; colon prefixes are not recognized.
func ParseVersion(s string) (Version, error) {
	parts := strings.SplitN(s, "-", 2)
	if parts[0] == "" {
		return Version{}, &InvalidPackageError{Field: "version", Value: s}
	}
	v := Version{Version: parts[0], Release: "1"}
	if len(parts) == 2 {
		v.Release = parts[1]
	}
	return v, nil
}

// Compare orders versions lexicographically on (epoch, version, release).
func (v Version) Compare(o Version) int {
	if v.Epoch != o.Epoch {
		if v.Epoch < o.Epoch {
			return -1
		}
		return 1
	}
	if c := strings.Compare(v.Version, o.Version); c != 0 {
		return c
	}
	return strings.Compare(v.Release, o.Release)
}

func (v Version) String() string {
	if v.Epoch > 0 {
		return fmt.Sprintf("%d:%s-%s", v.Epoch, v.Version, v.Release)
	}
	return v.Version + "-" + v.Release
}

// Dependency names a required package, optionally pinned to a version.
// Dependencies are carried through metadata but never resolved.
type Dependency struct {
	Name       string `json:"name"`
	Version    string `json:"version,omitempty"`
	Comparator string `json:"comparator,omitempty"`
}

// Package represents a software package with its metadata
type Package struct {
	Name         PackageName  `json:"name"`
	Version      Version      `json:"version"`
	Summary      string       `json:"summary"`
	Description  string       `json:"description"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
	Conflicts    []string     `json:"conflicts,omitempty"`
	Provides     []string     `json:"provides,omitempty"`
	Files        []string     `json:"files,omitempty"`
	Size         uint64       `json:"size"`
	License      string       `json:"license,omitempty"`
	URL          string       `json:"url,omitempty"`
}

// Matches reports whether the query is a case-insensitive substring of the
// package name, summary or description.
func (p Package) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name.Name), q) ||
		strings.Contains(strings.ToLower(p.Summary), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
