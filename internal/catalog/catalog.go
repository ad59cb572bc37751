// Package catalog holds the read-only product list and FAQ shown by the bot.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"bizbot/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type Catalog struct {
	Products []model.Product `yaml:"products"`
	FAQ      []model.FAQItem `yaml:"faq"`
}

// Category groups products under a category name.
type Category struct {
	Name     string
	Products []model.Product
}

// Load reads the catalog from path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[int]struct{}, len(c.Products))
	for _, p := range c.Products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("product %d has no name", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %d has negative price %d", p.ID, p.Price)
		}
	}
	for i, item := range c.FAQ {
		if item.Question == "" || item.Answer == "" {
			return fmt.Errorf("faq item %d is incomplete", i+1)
		}
	}
	return nil
}

// Product looks up a product by id.
func (c *Catalog) Product(id int) (model.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (c *Catalog) Available() []model.Product {
	out := make([]model.Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// Categories groups all products by category, keeping first-seen order.
func (c *Catalog) Categories() []Category {
	var out []Category
	index := make(map[string]int)
	for _, p := range c.Products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, Category{Name: p.Category})
		}
		out[i].Products = append(out[i].Products, p)
	}
	return out
}
