package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Repository reads the catalog document from disk, or the embedded default when no path is set.
type Repository struct {
	path string
}

// NewRepository keeps the path; nothing is read until Load.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads and validates the catalog document.
func (r *Repository) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.path == "" {
		return Parse(defaultDocument)
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}
	return c, nil
}

// Parse decodes a YAML mapping of category to item prices, keeping document order.
func Parse(data []byte) (Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || isNull(doc.Content[0]) {
		return nil, ErrEmptyCatalog
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse catalog: line %d: expected a mapping of categories", root.Line)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := make(Catalog, 0, len(root.Content)/2)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if seen[key.Value] {
			return nil, fmt.Errorf("parse catalog: line %d: duplicate category %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		items, err := parseItems(key.Value, value)
		if err != nil {
			return nil, err
		}
		c = append(c, Category{Name: key.Value, Items: items})
	}
	return c, nil
}

// parseItems reads one category body; a null body means no items.
func parseItems(category string, node *yaml.Node) ([]Item, error) {
	items := []Item{}
	if isNull(node) {
		return items, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse catalog: line %d: category %q must map items to prices", node.Line, category)
	}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if seen[key.Value] {
			return nil, fmt.Errorf("parse catalog: line %d: duplicate item %s/%s", key.Line, category, key.Value)
		}
		seen[key.Value] = true

		var price int
		if err := value.Decode(&price); err != nil {
			return nil, fmt.Errorf("parse catalog: %s/%s: %w", category, key.Value, err)
		}
		if price < 0 {
			return nil, fmt.Errorf("%w: %s/%s = %d", ErrInvalidPrice, category, key.Value, price)
		}
		items = append(items, Item{Name: key.Value, Price: price})
	}
	return items, nil
}

// isNull reports an explicit or empty YAML null.
func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
