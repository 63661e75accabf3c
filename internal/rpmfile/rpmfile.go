// Package rpmfile reads local .rpm files: lead-magic detection and header
// extraction into the package model.
package rpmfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/sassoftware/go-rpmutils"

	"dnflite/internal/models"
)

// Every RPM file starts with this four-byte lead magic.
var leadMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

// IsRPM reports whether path names a readable file carrying the RPM lead
// magic. It never returns an error: anything unreadable is simply not an
// RPM file.
func IsRPM(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, len(leadMagic))
	if _, err := f.Read(header); err != nil {
		return false
	}
	return bytes.Equal(header, leadMagic)
}

// Parse reads the header of the RPM file at path and maps it into a
// Package. The payload is never unpacked.
func Parse(path string) (models.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Package{}, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return models.Package{}, fmt.Errorf("reading RPM header of %s: %w", path, err)
	}

	name, err := models.NewPackageName(
		getStringTag(rpm, rpmutils.NAME),
		getStringTag(rpm, rpmutils.ARCH),
	)
	if err != nil {
		return models.Package{}, err
	}

	version := models.Version{
		Epoch:   uint32(getIntTag(rpm, rpmutils.EPOCH)),
		Version: getStringTag(rpm, rpmutils.VERSION),
		Release: getStringTag(rpm, rpmutils.RELEASE),
	}
	if version.Version == "" {
		return models.Package{}, &models.InvalidPackageError{Field: "version", Value: ""}
	}
	if version.Release == "" {
		version.Release = "1"
	}

	var deps []models.Dependency
	for _, req := range getStringSliceTag(rpm, rpmutils.REQUIRENAME) {
		deps = append(deps, models.Dependency{Name: req})
	}

	pkg := models.Package{
		Name:         name,
		Version:      version,
		Summary:      getStringTag(rpm, rpmutils.SUMMARY),
		Description:  getStringTag(rpm, rpmutils.DESCRIPTION),
		Dependencies: deps,
		Conflicts:    getStringSliceTag(rpm, rpmutils.CONFLICTNAME),
		Provides:     getStringSliceTag(rpm, rpmutils.PROVIDENAME),
		Size:         uint64(getIntTag(rpm, rpmutils.SIZE)),
		License:      getStringTag(rpm, rpmutils.LICENSE),
		URL:          getStringTag(rpm, rpmutils.URL),
	}

	if files, err := rpm.Header.GetFiles(); err == nil {
		for _, fi := range files {
			pkg.Files = append(pkg.Files, fi.Name())
		}
	}

	return pkg, nil
}

// getStringTag safely gets a string tag from the RPM header
func getStringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// getIntTag safely gets an integer tag from the RPM header
func getIntTag(rpm *rpmutils.Rpm, tag int) int64 {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return 0
	}
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case []int32:
		if len(v) > 0 {
			return int64(v[0])
		}
	case []uint32:
		if len(v) > 0 {
			return int64(v[0])
		}
	}
	return 0
}

// getStringSliceTag safely gets a string slice tag from the RPM header
func getStringSliceTag(rpm *rpmutils.Rpm, tag int) []string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return nil
	}
	slice, ok := val.([]string)
	if !ok {
		return nil
	}
	var result []string
	for _, s := range slice {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
