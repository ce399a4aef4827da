package domain

// Category identifies one crawlable listing page within a source's taxonomy.
// Owned by the static taxonomy tables, read-only at crawl time.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Group   string `json:"group,omitempty"`    // parent-group label, empty for standalone leaves
	URLPath string `json:"url_path,omitempty"` // overrides the source's default listing path
}

// TopCategory returns the value stored as a product's top-level category:
// the parent-group label when the node belongs to one, the node's own
// display name otherwise.
func (c Category) TopCategory() string {
	if c.Group != "" {
		return c.Group
	}
	return c.Name
}

// SubCategory returns the node name when it sits under a parent group,
// empty otherwise.
func (c Category) SubCategory() string {
	if c.Group != "" {
		return c.Name
	}
	return ""
}
