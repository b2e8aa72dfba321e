package webreduce

// AnchorTag is the tag that carries link targets. Anchor nodes are the
// only nodes that may hold an Href and, after expansion, a Subpage.
const AnchorTag = "a"

// Content is one entry in a reduced tree's child sequence: either a
// structural/text Node or a Table extracted from a table element. It is
// a closed union; only *Node and *Table implement it.
type Content interface {
	content()
}

// Node is a node in a reduced page tree. A node is either a text leaf
// (Text set, everything else empty) or a structural node (Tag set,
// children in document order). Serialization is single-line JSON with
// absent fields omitted entirely.
type Node struct {
	Tag  string `json:"tag,omitempty"`
	Href string `json:"href,omitempty"`
	Text string `json:"text,omitempty"`

	// Children holds surviving content in document order.
	Children []Content `json:"children,omitempty"`

	// Subpage is the reduced tree of the page this anchor links to.
	// It is filled only by one-hop expansion and is never itself
	// expanded further.
	Subpage *Node `json:"subpage,omitempty"`
}

func (*Node) content() {}

// Validate returns an error if the node violates reduced-tree invariants.
func (n *Node) Validate() error {
	if n.Tag == "" {
		if n.Text == "" {
			return Errorf(EINVALID, "text leaf requires text")
		}
		if len(n.Children) > 0 {
			return Errorf(EINVALID, "text leaf cannot have children")
		}
	}
	if n.Tag != AnchorTag {
		if n.Href != "" {
			return Errorf(EINVALID, "href is only valid on %q nodes", AnchorTag)
		}
		if n.Subpage != nil {
			return Errorf(EINVALID, "subpage is only valid on %q nodes", AnchorTag)
		}
	}
	return nil
}

// Table is the record-set representation of an HTML table: a header list
// plus one field-keyed record per data row. All values are strings; no
// numeric or type inference is performed.
type Table struct {
	Headers []string            `json:"headers,omitempty"`
	Rows    []map[string]string `json:"rows,omitempty"`
}

func (*Table) content() {}
