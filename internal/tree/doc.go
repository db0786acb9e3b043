// Package tree describes the folders and files a scaffold run creates. A tree
// is a tagged variant: a Directory holds an ordered list of members (named
// sub-folders or lists of leaf entries), and a FileList holds leaf entries.
// The package also reads and writes tree documents (YAML), validates them
// against an embedded JSON Schema, and checks document version compatibility.
package tree
