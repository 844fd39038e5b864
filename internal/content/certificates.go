package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// certificatesDoc is the shape of content/certificates.yml.
type certificatesDoc struct {
	Certificates []Certificate `yaml:"certificates"`
}

// LoadCertificates reads the certificates list from the given YAML
// file. A missing file yields an empty list: the carousel is simply
// omitted from the rendered site.
func LoadCertificates(path string) ([]Certificate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc certificatesDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	seen := make(map[int]bool, len(doc.Certificates))
	for i, c := range doc.Certificates {
		if c.Title == "" {
			return nil, fmt.Errorf("%s: certificate %d: field %q: required", path, i, "title")
		}
		if c.Issuer == "" {
			return nil, fmt.Errorf("%s: certificate %d: field %q: required", path, i, "issuer")
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%s: certificate %d: duplicate id %d", path, i, c.ID)
		}
		seen[c.ID] = true
	}

	return doc.Certificates, nil
}
