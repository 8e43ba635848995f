package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Item is one priced entry inside a category.
type Item struct {
	Name  string
	Price int
}

// Category keeps its items in document order.
type Category struct {
	Name  string
	Items []Item
}

// Catalog is the nested category/item/price record, in document order.
type Catalog []Category

// Entry is one flattened catalog row.
type Entry struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Price    int    `json:"price"`
}

// Default is the catalog the drills print when no file is configured.
func Default() Catalog {
	return Catalog{
		{Name: "electronics", Items: []Item{{"mobile", 10}, {"laptop", 5}}},
		{Name: "fashion", Items: []Item{{"shirt", 20}, {"jeans", 15}}},
		{Name: "groceries", Items: []Item{{"rice", 30}, {"wheat", 25}}},
	}
}

// Clone returns a deep copy so the owner's slices never leak to callers.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, category := range c {
		out[i] = Category{Name: category.Name, Items: append([]Item{}, category.Items...)}
	}
	return out
}

// Lookup finds the price of item within category.
func (c Catalog) Lookup(category, item string) (int, bool) {
	for _, cat := range c {
		if cat.Name != category {
			continue
		}
		for _, it := range cat.Items {
			if it.Name == item {
				return it.Price, true
			}
		}
		return 0, false
	}
	return 0, false
}

// Entries flattens the catalog in document order.
func (c Catalog) Entries() []Entry {
	var entries []Entry
	for _, cat := range c {
		for _, it := range cat.Items {
			entries = append(entries, Entry{Category: cat.Name, Item: it.Name, Price: it.Price})
		}
	}
	return entries
}

// String renders the catalog as a nested literal in document order.
func (c Catalog) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, cat := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cat.Name)
		sb.WriteString(": {")
		for j, it := range cat.Items {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %d", it.Name, it.Price)
		}
		sb.WriteString("}")
	}
	sb.WriteString("}")
	return sb.String()
}

// MarshalJSON writes a nested object whose keys keep document order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, cat.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, it := range cat.Items {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, it.Name); err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "%d", it.Price)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte(':')
	return nil
}

// String renders an entry as "category/item price".
func (e Entry) String() string {
	return fmt.Sprintf("%s/%s %d", e.Category, e.Item, e.Price)
}
