package content

import (
	_ "embed"
	"errors"

	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var pagesYAML []byte

var ErrPageNotFound = errors.New("page not found")

// Page is one static marketing page.
type Page struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type document struct {
	Pages []Page `yaml:"pages"`
}

// Pages returns the marketing pages bundled with the storefront.
func Pages() ([]Page, error) {
	var doc document
	if err := yaml.Unmarshal(pagesYAML, &doc); err != nil {
		return nil, err
	}
	return doc.Pages, nil
}

// PageBySlug looks up a single page.
func PageBySlug(slug string) (*Page, error) {
	pages, err := Pages()
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, ErrPageNotFound
}
