// Package db persists the set of installed packages as a JSON file.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dnflite/internal/models"
	"dnflite/internal/utils"
)

const storeName = "packages.json"

// ErrNotInstalled reports an operation on a package the store does not hold.
var ErrNotInstalled = errors.New("package is not installed")

// NotInstalledError carries the name of the missing package.
type NotInstalledError struct {
	Name models.PackageName
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("package %s is not installed", e.Name)
}

func (e *NotInstalledError) Unwrap() error { return ErrNotInstalled }

// InstalledPackage is one record in the store.
type InstalledPackage struct {
	Package     models.Package `json:"package"`
	Files       []string       `json:"installed_files"`
	InstallTime time.Time      `json:"install_time"`
	InstallID   string         `json:"install_id"`
	Checksum    string         `json:"checksum,omitempty"`
}

type storeFile struct {
	Packages map[string]InstalledPackage `json:"packages"`
}

// PackageDB is the installed-package store. Records are keyed by the
// package's name.arch string and every mutation is written through to disk
// before it returns.
type PackageDB struct {
	path     string
	packages map[string]InstalledPackage
}

// Open loads the store from databaseDir. A missing file yields an empty
// store; a file that exists but cannot be decoded is an error, never
// silently discarded.
func Open(databaseDir string) (*PackageDB, error) {
	path := filepath.Join(databaseDir, storeName)

	d := &PackageDB{
		path:     path,
		packages: make(map[string]InstalledPackage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("no package store at %s, starting empty", path)
			return d, nil
		}
		return nil, err
	}

	var store storeFile
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("reading package store %s: %w", path, err)
	}
	if store.Packages != nil {
		d.packages = store.Packages
	}

	logrus.Debugf("package store %s: %d installed", path, len(d.packages))
	return d, nil
}

// Add records a package as installed, replacing any existing record with the
// same name.arch key. The returned record carries the generated install id
// and timestamp.
func (d *PackageDB) Add(pkg models.Package, files []string, checksum string) (InstalledPackage, error) {
	record := InstalledPackage{
		Package:     pkg,
		Files:       files,
		InstallTime: time.Now().UTC().Truncate(time.Second),
		InstallID:   uuid.NewString(),
		Checksum:    checksum,
	}

	d.packages[pkg.Name.String()] = record
	if err := d.save(); err != nil {
		return InstalledPackage{}, err
	}
	return record, nil
}

// Remove deletes a package record. Removing a package that is not installed
// fails without touching the store file.
func (d *PackageDB) Remove(name models.PackageName) error {
	key := name.String()
	if _, ok := d.packages[key]; !ok {
		return &NotInstalledError{Name: name}
	}

	delete(d.packages, key)
	return d.save()
}

// Get returns the record for a package name, if installed.
func (d *PackageDB) Get(name models.PackageName) (InstalledPackage, bool) {
	record, ok := d.packages[name.String()]
	return record, ok
}

// List returns all installed records sorted by name.arch.
func (d *PackageDB) List() []InstalledPackage {
	keys := make([]string, 0, len(d.packages))
	for key := range d.packages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]InstalledPackage, 0, len(keys))
	for _, key := range keys {
		records = append(records, d.packages[key])
	}
	return records
}

func (d *PackageDB) save() error {
	data, err := json.MarshalIndent(storeFile{Packages: d.packages}, "", "  ")
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(d.path, data, 0o644)
}
