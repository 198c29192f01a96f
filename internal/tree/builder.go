package tree

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hitsz-openauto/coursegen/internal/domain"
)

const rawURLBase = "https://gh.hoa.moe/github.com/HITSZ-OpenAuto"

// builderNode is the mutable intermediate structure used during insertion.
// It becomes an owned domain.TreeNode once the whole manifest is inserted.
type builderNode struct {
	children map[string]*builderNode
	isFile   bool
	url      string
	size     int64
	date     string
}

func newBuilderNode() *builderNode {
	return &builderNode{children: map[string]*builderNode{}}
}

// Build converts a flat manifest into a sorted list of root-level tree
// nodes for the given course repository. Excluded entries are dropped before
// insertion. The result is deterministic for any iteration order of the
// manifest map.
func Build(m Manifest, repoID string) []domain.TreeNode {
	root := newBuilderNode()

	for path, meta := range m {
		if !Included(path) {
			continue
		}

		parts := strings.Split(path, "/")
		current := root
		for i, part := range parts {
			child, ok := current.children[part]
			if !ok {
				child = newBuilderNode()
				current.children[part] = child
			}
			current = child

			if i == len(parts)-1 {
				current.isFile = true
				current.url = downloadURL(repoID, path)
				if meta.Size != nil {
					current.size = *meta.Size
				}
				if meta.Time != nil {
					current.date = formatDate(*meta.Time)
				}
			}
		}
	}

	return root.toNodes()
}

// toNodes converts children into domain nodes and applies the ordering
// invariant: folders first, then case-insensitive name order with exact byte
// order as tie-break.
func (b *builderNode) toNodes() []domain.TreeNode {
	nodes := make([]domain.TreeNode, 0, len(b.children))
	for name, child := range b.children {
		kind := domain.NodeFolder
		if child.isFile {
			kind = domain.NodeFile
		}
		nodes = append(nodes, domain.TreeNode{
			Name:     name,
			Kind:     kind,
			Children: child.toNodes(),
			URL:      child.url,
			Size:     child.size,
			Date:     child.date,
		})
	}

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Kind != nodes[j].Kind {
			return nodes[i].Kind == domain.NodeFolder
		}
		li, lj := strings.ToLower(nodes[i].Name), strings.ToLower(nodes[j].Name)
		if li != lj {
			return li < lj
		}
		return nodes[i].Name < nodes[j].Name
	})

	return nodes
}

// downloadURL builds the raw-content URL for a file, percent-encoding each
// path segment while preserving separators.
func downloadURL(repoID, path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return rawURLBase + "/" + repoID + "/raw/main/" + strings.Join(parts, "/")
}

// formatDate renders a Unix timestamp as YYYY-MM-DD in UTC.
func formatDate(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}
