package docfile

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
)

// stylesXML mirrors the part of word/styles.xml we care about: the set of
// defined style IDs.
type stylesXML struct {
	XMLName xml.Name `xml:"styles"`
	Styles  []struct {
		ID string `xml:"styleId,attr"`
	} `xml:"style"`
}

// readStyleIDs lists the paragraph style IDs defined in a docx file.
// go-docx does not expose the style table of parsed files, so it is read
// straight from the zip container.
func readStyleIDs(path string) (map[string]struct{}, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/styles.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open styles.xml: %w", err)
		}
		defer rc.Close()

		var parsed stylesXML
		if err := xml.NewDecoder(rc).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("decode styles.xml: %w", err)
		}

		ids := make(map[string]struct{}, len(parsed.Styles))
		for _, s := range parsed.Styles {
			if s.ID != "" {
				ids[s.ID] = struct{}{}
			}
		}
		return ids, nil
	}

	return nil, fmt.Errorf("no styles.xml in %s", path)
}
