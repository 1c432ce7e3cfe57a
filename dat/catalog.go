package dat

// Header holds the DAT metadata block. Empty fields are omitted from the
// serialized output; ForcePacking is only written when set.
type Header struct {
	Name        string
	Description string
	Category    string
	Version     string
	Date        string
	Author      string
	Comment     string
	URL         string

	ForcePacking ForcePacking
}

// FileRecord is one cataloged file: its stored name, exact byte count, and
// the three checksums as lowercase zero-padded hex. Records are created once
// per source file after digesting and never modified.
type FileRecord struct {
	Name  string
	Size  int64
	CRC32 string // 8 hex digits
	MD5   string // 32 hex digits
	SHA1  string // 40 hex digits
}

// Node is a child of a Category or of the catalog root: either another
// *Category or a *Group. FileRecords are never nodes; they only exist
// inside a Group.
type Node interface {
	NodeName() string
}

// Group is a <game>: the only container that may own file records.
// Records keep their insertion order.
type Group struct {
	Name    string
	Records []FileRecord
}

// NodeName returns the group's name.
func (g *Group) NodeName() string { return g.Name }

// Category is a <dir>: a named level above games. Its children are
// sub-categories and groups in first-seen order, never bare records.
type Category struct {
	Name     string
	Children []Node
}

// NodeName returns the category's name.
func (c *Category) NodeName() string { return c.Name }

// Catalog is a finished DAT: the header plus the root sequence of
// categories and groups. It is built incrementally by a Builder and must
// not be mutated once serialization begins.
type Catalog struct {
	Header   Header
	Children []Node
}
