// Package bookmarks turns browser bookmark trees into flat bookmark lists.
package bookmarks

import (
	"strconv"

	"github.com/vrsandeep/mango-marks/internal/models"
)

// Flatten walks the tree depth-first, pre-order, and returns every node
// that has both a title and a URL. Nodes missing either are skipped but
// their children are still visited.
//
// Ids are unique within the result. A node without an id gets its pre-order
// index; the first node carrying an id keeps it, and later duplicates (or a
// generated index that collides with a supplied id) get a "-N" suffix.
func Flatten(nodes []models.RawNode) []models.Bookmark {
	reserved := make(map[string]bool)
	collectIDs(nodes, reserved)

	seen := make(map[string]bool)
	var result []models.Bookmark
	seq := 0
	var walk func(nodes []models.RawNode)
	walk = func(nodes []models.RawNode) {
		for _, node := range nodes {
			if node.Title != nil && node.URL != nil {
				id := node.ID
				if id == "" || seen[id] {
					base := id
					if base == "" {
						base = strconv.Itoa(seq)
					}
					id = freeID(base, seen, reserved)
				}
				seen[id] = true
				result = append(result, models.Bookmark{
					ID:       id,
					Title:    *node.Title,
					URL:      *node.URL,
					Chapter:  node.Chapter,
					Portrait: node.Portrait,
					Type:     node.Type,
				})
			}
			seq++
			if len(node.Children) > 0 {
				walk(node.Children)
			}
		}
	}
	walk(nodes)
	return result
}

// collectIDs records the ids supplied by usable leaves.
func collectIDs(nodes []models.RawNode, ids map[string]bool) {
	for _, node := range nodes {
		if node.ID != "" && node.Title != nil && node.URL != nil {
			ids[node.ID] = true
		}
		collectIDs(node.Children, ids)
	}
}

// freeID returns base, or base with the smallest "-N" suffix, that is
// neither used nor supplied by another node.
func freeID(base string, seen, reserved map[string]bool) string {
	if !seen[base] && !reserved[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !seen[candidate] && !reserved[candidate] {
			return candidate
		}
	}
}

// Count returns the number of usable leaves in the tree without building them.
func Count(nodes []models.RawNode) int {
	n := 0
	for _, node := range nodes {
		if node.Title != nil && node.URL != nil {
			n++
		}
		n += Count(node.Children)
	}
	return n
}
