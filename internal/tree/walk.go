package tree

import "fmt"

// Visit is one folder or leaf reached by Walk.
type Visit struct {
	Path   string // slash-separated, relative to the walk root
	Name   string
	Kind   EntryKind
	Folder bool // true for Folder members, false for leaf entries
}

// WalkFunc is called for every visit. Returning an error stops the walk.
type WalkFunc func(v Visit) error

// Walk visits every folder and leaf of node in declaration order. Folders are
// visited before their content.
func Walk(node Node, fn WalkFunc) error {
	return walk("", node, fn)
}

func walk(base string, node Node, fn WalkFunc) error {
	switch n := node.(type) {
	case Directory:
		for _, m := range n.Members {
			if err := walkMember(base, m, fn); err != nil {
				return err
			}
		}
		return nil
	case FileList:
		return walkLeaves(base, n, fn)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported node type %T", node)
	}
}

func walkMember(base string, m Member, fn WalkFunc) error {
	switch v := m.(type) {
	case Folder:
		p := joinRel(base, v.Name)
		if err := fn(Visit{Path: p, Name: v.Name, Kind: EntryDir, Folder: true}); err != nil {
			return err
		}
		return walk(p, v.Node, fn)
	case FileList:
		return walkLeaves(base, v, fn)
	default:
		return fmt.Errorf("unsupported member type %T", m)
	}
}

func walkLeaves(base string, fl FileList, fn WalkFunc) error {
	for _, e := range fl.Entries {
		if err := fn(Visit{Path: joinRel(base, e.Name), Name: e.Name, Kind: e.Kind}); err != nil {
			return err
		}
	}
	return nil
}

// joinRel joins without cleaning so invalid names stay visible in paths.
func joinRel(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}

// Stats counts the items of a tree.
type Stats struct {
	Folders   int
	Files     int
	EmptyDirs int
}

// Count returns the folder, file and empty-directory totals of node.
func Count(node Node) Stats {
	var s Stats
	_ = Walk(node, func(v Visit) error {
		switch {
		case v.Folder:
			s.Folders++
		case v.Kind == EntryDir:
			s.EmptyDirs++
		default:
			s.Files++
		}
		return nil
	})
	return s
}
