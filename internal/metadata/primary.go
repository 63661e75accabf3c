package metadata

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"dnflite/internal/models"
)

// partial accumulates one package record while its element is open. A nil
// partial means the scanner is between package elements.
type partial struct {
	name        string
	nameSet     bool
	arch        string
	version     models.Version
	summary     string
	description string
	invalid     error
}

// finish validates the accumulated record and converts it to a Package.
func (p *partial) finish() (models.Package, error) {
	if p.invalid != nil {
		return models.Package{}, p.invalid
	}
	if !p.nameSet || p.name == "" {
		return models.Package{}, &models.InvalidPackageError{Field: "name", Value: p.name}
	}

	name, err := models.NewPackageName(p.name, p.arch)
	if err != nil {
		return models.Package{}, err
	}

	return models.Package{
		Name:        name,
		Version:     p.version,
		Summary:     p.summary,
		Description: p.description,
	}, nil
}

// ParsePrimary streams a primary metadata document and returns the packages
// it describes, keyed by name. Later entries for the same name replace
// earlier ones. Records that fail validation are dropped individually.
//
// When the document cannot be read to the end, the packages scanned so far
// are returned together with the error.
func ParsePrimary(r io.Reader, defaultArch string) (map[string]models.Package, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	packages := make(map[string]models.Package)

	var cur *partial
	var text strings.Builder
	dropped := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return packages, fmt.Errorf("primary document scan: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			text.Reset()
			if el.Name.Local == "package" {
				cur = &partial{
					arch:    defaultArch,
					version: models.Version{Version: "0", Release: "0"},
				}
			}

		case xml.CharData:
			if cur != nil {
				text.Write(el)
			}

		case xml.EndElement:
			if cur == nil {
				continue
			}
			value := strings.TrimSpace(text.String())
			text.Reset()

			switch el.Name.Local {
			case "name":
				cur.name = value
				cur.nameSet = true
			case "arch":
				if value != "" {
					cur.arch = value
				}
			case "summary":
				cur.summary = value
			case "description":
				cur.description = value
			case "version":
				// Real primary documents carry the version as attributes on
				// a self-closing element; those keep the zero default. Only
				// element text is parsed.
				if value != "" {
					v, err := models.ParseVersion(value)
					if err != nil {
						cur.invalid = err
					} else {
						cur.version = v
					}
				}
			case "package":
				pkg, err := cur.finish()
				if err != nil {
					logrus.Debugf("dropping package record: %v", err)
					dropped++
				} else {
					packages[pkg.Name.Name] = pkg
				}
				cur = nil
			}
		}
	}

	if dropped > 0 {
		logrus.Debugf("dropped %d invalid package records", dropped)
	}
	return packages, nil
}
