package domain

// NodeKind discriminates folder and file nodes in a resource tree.
type NodeKind int

const (
	NodeFolder NodeKind = iota
	NodeFile
)

// TreeNode is one node of a course's resource file tree. Folders own their
// children exclusively; files carry the manifest metadata used for rendering.
type TreeNode struct {
	Name     string
	Kind     NodeKind
	Children []TreeNode
	URL      string
	Size     int64
	Date     string // YYYY-MM-DD, empty when the manifest had no timestamp
}

// IsFolder reports whether the node is a folder.
func (n *TreeNode) IsFolder() bool { return n.Kind == NodeFolder }
