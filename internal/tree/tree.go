// Package tree rebuilds the logical folder tree from the flat folder and
// association lists, the same way a browsing client does after every fetch.
// The flat lists are the source of truth; this structure is derived and
// rebuilt wholesale, never mutated in place.
package tree

import (
	"Mediabox/internal/models"
)

type Node struct {
	Images     []models.Image   `json:"images"`
	SubFolders map[string]*Node `json:"subFolders"`
}

func newNode() *Node {
	return &Node{
		Images:     []models.Image{},
		SubFolders: map[string]*Node{},
	}
}

// Rebuild assembles the tree from flat lists. It is insertion-order
// independent: a child may appear before its parent in the folder list.
// Folders whose parent id points at a missing row are treated as root-level,
// and empty inputs produce an empty root.
func Rebuild(folders []models.Folder, images []models.Image, links []models.ImageFolder) *Node {
	root := newNode()

	byID := make(map[uint]models.Folder, len(folders))
	for _, folder := range folders {
		byID[folder.ID] = folder
	}

	b := &pathBuilder{byID: byID, memo: map[uint][]string{}}

	for _, folder := range folders {
		insertPath(root, b.pathOf(folder.ID))
	}

	// One folder per image; with multiple association rows the first one wins.
	imageFolder := make(map[uint]uint, len(links))
	for _, link := range links {
		if _, seen := imageFolder[link.ImageID]; !seen {
			imageFolder[link.ImageID] = link.FolderID
		}
	}

	for _, image := range images {
		node := root
		if folderID, ok := imageFolder[image.ID]; ok {
			if _, exists := byID[folderID]; exists {
				node = insertPath(root, b.pathOf(folderID))
			}
		}
		node.Images = append(node.Images, image)
	}

	return root
}

// insertPath walks segments from the root, creating missing nodes, and returns
// the leaf. Creating intermediates defensively keeps a momentarily missing
// parent record from dropping a whole branch.
func insertPath(root *Node, segments []string) *Node {
	current := root
	for _, name := range segments {
		child, ok := current.SubFolders[name]
		if !ok {
			child = newNode()
			current.SubFolders[name] = child
		}
		current = child
	}
	return current
}

// Lookup returns the node at a path of segments, or nil if absent.
func Lookup(root *Node, segments []string) *Node {
	current := root
	for _, name := range segments {
		child, ok := current.SubFolders[name]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

type pathBuilder struct {
	byID map[uint]models.Folder
	memo map[uint][]string
}

// pathOf resolves a folder id to its name segments by walking parent
// pointers. Results are memoized so shared prefixes are walked once. A broken
// or cyclic parent chain terminates at whatever prefix could be resolved,
// which roots the subtree at the top level instead of crashing.
func (b *pathBuilder) pathOf(id uint) []string {
	if p, ok := b.memo[id]; ok {
		return p
	}

	var chain []uint
	visiting := map[uint]bool{}
	segments := []string{}

	current := id
	for {
		if p, ok := b.memo[current]; ok {
			segments = p
			break
		}
		if visiting[current] {
			break
		}
		folder, ok := b.byID[current]
		if !ok {
			break
		}
		visiting[current] = true
		chain = append(chain, current)
		if folder.ParentID == nil {
			break
		}
		current = *folder.ParentID
	}

	// chain holds ids from the target upward; unwind it onto the resolved
	// prefix and memoize every level on the way down.
	for i := len(chain) - 1; i >= 0; i-- {
		folder := b.byID[chain[i]]
		segments = appendSegment(segments, folder.Name)
		b.memo[chain[i]] = segments
	}
	return segments
}

func appendSegment(base []string, name string) []string {
	out := make([]string, 0, len(base)+1)
	out = append(out, base...)
	return append(out, name)
}
