package dat

// Builder accumulates classified, digested records into a Catalog.
// Insertion is the only mutation: nodes are created on first use, reused
// afterwards, and never reordered or removed. Builder is not safe for
// concurrent use; the pipeline is single-threaded by design.
type Builder struct {
	catalog    *Catalog
	categories map[string]*Category
	groups     map[string]*Group
}

// NewBuilder returns a Builder for a catalog carrying the given header.
func NewBuilder(h Header) *Builder {
	return &Builder{
		catalog:    &Catalog{Header: h},
		categories: make(map[string]*Category),
		groups:     make(map[string]*Group),
	}
}

// Insert appends rec to the group at categories/group, creating any missing
// ancestors in first-seen order. A second insertion targeting the same
// (categories, group) path appends to the existing group; identically named
// records are kept as-is, never merged.
func (b *Builder) Insert(categories []string, group string, rec FileRecord) {
	siblings := &b.catalog.Children

	// Path components cannot contain "/", so slash-joined prefixes are
	// unambiguous cache keys. Category keys carry a trailing slash,
	// keeping them distinct from group keys at the same path.
	key := ""
	for _, name := range categories {
		key += name + "/"
		cat, ok := b.categories[key]
		if !ok {
			cat = &Category{Name: name}
			b.categories[key] = cat
			*siblings = append(*siblings, cat)
		}
		siblings = &cat.Children
	}

	g, ok := b.groups[key+group]
	if !ok {
		g = &Group{Name: group}
		b.groups[key+group] = g
		*siblings = append(*siblings, g)
	}
	g.Records = append(g.Records, rec)
}

// Records reports how many file records have been inserted so far.
func (b *Builder) Records() int {
	n := 0
	for _, g := range b.groups {
		n += len(g.Records)
	}
	return n
}

// Catalog returns the tree built so far. Callers must stop inserting once
// they hand the catalog to the serializer.
func (b *Builder) Catalog() *Catalog {
	return b.catalog
}
