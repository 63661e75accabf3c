// Package metadata reads XML repository metadata: the repomd.xml index and
// the primary package document it points at.
package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrPrimaryNotFound reports a repomd.xml without a usable primary entry.
var ErrPrimaryNotFound = errors.New("no primary metadata entry in repomd.xml")

// LocatePrimary scans a repomd.xml document for the first data entry of type
// "primary" and returns its location href, relative to the repository base
// URL. Any failure to find one, including malformed XML, reports
// ErrPrimaryNotFound.
func LocatePrimary(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	inPrimary := false
	href := ""

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return "", ErrPrimaryNotFound
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrPrimaryNotFound, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "data":
				inPrimary = attrValue(el, "type") == "primary"
				href = ""
			case "location":
				if inPrimary {
					href = attrValue(el, "href")
				}
			}
		case xml.EndElement:
			if el.Name.Local == "data" && inPrimary {
				if href != "" {
					return href, nil
				}
				inPrimary = false
			}
		}
	}
}

func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
