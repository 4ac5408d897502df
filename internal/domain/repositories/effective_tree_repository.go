package repositories

// TreeNode is a read-only node of the effective build description.
type TreeNode interface {
	// Single returns the first child with the given name, or nil when absent.
	Single(name string) TreeNode
	// Children returns every child with the given name, in document order.
	Children(name string) []TreeNode
	// Text returns the node's character data.
	Text() string
}

// EffectiveTreeRepository parses the output produced by evaluating a build.
type EffectiveTreeRepository interface {
	// Parse returns the document node; the project element is one of its children.
	Parse(data []byte) (TreeNode, error)
}
