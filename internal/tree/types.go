package tree

// EntryKind distinguishes leaf files from empty leaf directories.
type EntryKind int

const (
	// EntryFile is a file written with placeholder content.
	EntryFile EntryKind = iota
	// EntryDir is an empty directory.
	EntryDir
)

// String returns "file" or "dir".
func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is a leaf of the tree.
type Entry struct {
	Name string
	Kind EntryKind
}

// File returns a file entry.
func File(name string) Entry { return Entry{Name: name, Kind: EntryFile} }

// EmptyDir returns an empty-directory entry.
func EmptyDir(name string) Entry { return Entry{Name: name, Kind: EntryDir} }

// Node is the content of a folder: either a Directory or a FileList.
type Node interface {
	isNode()
}

// Member is one item of a Directory: either a Folder or a FileList whose
// entries are placed directly in the directory.
type Member interface {
	isMember()
}

// Directory is an ordered list of members.
type Directory struct {
	Members []Member
}

// FileList is an ordered sequence of leaf entries.
type FileList struct {
	Entries []Entry
}

// Folder is a named sub-folder and its content.
type Folder struct {
	Name string
	Node Node
}

func (Directory) isNode()  {}
func (FileList) isNode()   {}
func (FileList) isMember() {}
func (Folder) isMember()   {}

// Dir builds a Directory from members in order.
func Dir(members ...Member) Directory {
	return Directory{Members: members}
}

// Sub builds a named sub-folder.
func Sub(name string, node Node) Folder {
	return Folder{Name: name, Node: node}
}

// Leaves builds a FileList from entries in order.
func Leaves(entries ...Entry) FileList {
	return FileList{Entries: entries}
}

// Document is the on-disk form of a tree description.
type Document struct {
	Version string
	Name    string
	Root    Directory
}
