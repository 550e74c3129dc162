package titles

import "strings"

// Catalog is an in-memory Finder over a fixed set of canonical titles.
type Catalog struct {
	exact      map[string]struct{}
	normalized map[string][]string
}

// NewCatalog builds a catalog. Blank titles are ignored.
func NewCatalog(titles ...string) *Catalog {
	c := &Catalog{
		exact:      make(map[string]struct{}, len(titles)),
		normalized: make(map[string][]string, len(titles)),
	}
	for _, title := range titles {
		c.Add(title)
	}
	return c
}

// Add registers one canonical title.
func (c *Catalog) Add(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	if _, ok := c.exact[title]; ok {
		return
	}
	c.exact[title] = struct{}{}
	key := Normalize(title)
	c.normalized[key] = append(c.normalized[key], title)
}

// Len reports the number of canonical titles.
func (c *Catalog) Len() int { return len(c.exact) }

// FindOne implements Finder.
func (c *Catalog) FindOne(query Query) (string, bool) {
	for _, name := range query.Names {
		if _, ok := c.exact[name]; ok {
			return name, true
		}
	}
	if !query.Normalized {
		return "", false
	}
	for _, name := range query.Names {
		candidates := c.normalized[Normalize(name)]
		if len(candidates) == 1 {
			return candidates[0], true
		}
	}
	return "", false
}
