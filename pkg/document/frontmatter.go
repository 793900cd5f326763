package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block prepended to every output document.
// Field order matches the emitted YAML.
type FrontMatter struct {
	Title        string `yaml:"title"`
	URL          string `yaml:"url"`
	Date         string `yaml:"date"`
	Domain       string `yaml:"domain"`
	ImagesFolder string `yaml:"images_folder,omitempty"`
}

// Render returns the delimited front-matter block followed by the top-level
// title heading. The document body is appended verbatim after this header.
func (f FrontMatter) Render() (string, error) {
	var sb strings.Builder
	sb.WriteString("---\n")

	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	sb.WriteString("---\n\n")
	sb.WriteString("# " + f.Title + "\n\n")
	return sb.String(), nil
}
