package tree

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FilesKey is the mapping key that lists leaves placed directly in a folder.
const FilesKey = "_files"

// dirSuffix marks an empty directory in a document's leaf list.
const dirSuffix = "/"

// Parse decodes a tree document without validating it. Mapping key order is
// preserved, so the resulting tree visits items in the order they are written.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty tree document")
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: tree document must be a mapping", top.Line)
	}

	doc := &Document{}
	var treeNode *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "version":
			doc.Version = val.Value
		case "name":
			doc.Name = val.Value
		case "tree":
			treeNode = resolveAlias(val)
		default:
			return nil, fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	if treeNode == nil {
		return nil, fmt.Errorf("tree document missing required 'tree' field")
	}

	dir, err := decodeDirectory(treeNode)
	if err != nil {
		return nil, err
	}
	doc.Root = dir
	return doc, nil
}

// LoadFile reads a tree document and runs every check on it: JSON Schema,
// version compatibility and name rules.
func LoadFile(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := ValidateSchema(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s does not match the tree schema: %s", path, result.Summary())
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing tree document %s: %w", path, err)
	}
	if err := CheckVersion(doc.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(doc.Root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func decodeDirectory(n *yaml.Node) (Directory, error) {
	n = resolveAlias(n)
	if isNull(n) {
		return Directory{}, nil
	}
	if n.Kind != yaml.MappingNode {
		return Directory{}, fmt.Errorf("line %d: expected a mapping of folders", n.Line)
	}

	var dir Directory
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolveAlias(n.Content[i]), n.Content[i+1]
		if key.ShortTag() == "!!merge" {
			merged, err := decodeMerge(val)
			if err != nil {
				return Directory{}, err
			}
			dir.Members = append(dir.Members, merged...)
			continue
		}
		if key.Value == FilesKey {
			fl, err := decodeFileList(val)
			if err != nil {
				return Directory{}, err
			}
			dir.Members = append(dir.Members, fl)
			continue
		}

		content, err := decodeContent(val)
		if err != nil {
			return Directory{}, fmt.Errorf("%s: %w", key.Value, err)
		}
		dir.Members = append(dir.Members, Sub(key.Value, content))
	}
	return dir, nil
}

// decodeMerge expands a "<<" merge key: one mapping or a list of mappings.
func decodeMerge(n *yaml.Node) ([]Member, error) {
	n = resolveAlias(n)
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}

	var members []Member
	for _, src := range sources {
		dir, err := decodeDirectory(src)
		if err != nil {
			return nil, err
		}
		members = append(members, dir.Members...)
	}
	return members, nil
}

func decodeContent(n *yaml.Node) (Node, error) {
	n = resolveAlias(n)
	switch {
	case isNull(n):
		return FileList{}, nil
	case n.Kind == yaml.MappingNode:
		return decodeDirectory(n)
	case n.Kind == yaml.SequenceNode:
		return decodeFileList(n)
	default:
		return nil, fmt.Errorf("line %d: folder content must be a mapping or a list", n.Line)
	}
}

func decodeFileList(n *yaml.Node) (FileList, error) {
	n = resolveAlias(n)
	if isNull(n) {
		return FileList{}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return FileList{}, fmt.Errorf("line %d: %s must be a list of names", n.Line, FilesKey)
	}

	fl := FileList{Entries: make([]Entry, 0, len(n.Content))}
	for _, item := range n.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode {
			return FileList{}, fmt.Errorf("line %d: list item must be a name", item.Line)
		}
		fl.Entries = append(fl.Entries, parseEntry(item.Value))
	}
	return fl, nil
}

// parseEntry maps the trailing-slash convention to an explicit entry kind.
func parseEntry(s string) Entry {
	if strings.HasSuffix(s, dirSuffix) {
		return EmptyDir(strings.TrimSuffix(s, dirSuffix))
	}
	return File(s)
}

// resolveAlias follows *anchor references to the node they name.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// Encode writes doc as YAML in the layout Parse reads. When a directory has
// several leaf lists they are merged into the position of the first one.
func Encode(doc *Document) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalar("version"), quoted(doc.Version))
	if doc.Name != "" {
		top.Content = append(top.Content, scalar("name"), scalar(doc.Name))
	}
	top.Content = append(top.Content, scalar("tree"), encodeDirectory(doc.Root))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}); err != nil {
		return nil, fmt.Errorf("encoding tree document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding tree document: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeDirectory(d Directory) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	var files *yaml.Node
	for _, member := range d.Members {
		switch v := member.(type) {
		case FileList:
			if files == nil {
				files = encodeFileList(v)
				m.Content = append(m.Content, scalar(FilesKey), files)
				continue
			}
			files.Content = append(files.Content, encodeFileList(v).Content...)
		case Folder:
			m.Content = append(m.Content, scalar(v.Name), encodeContent(v.Node))
		}
	}
	return m
}

func encodeContent(n Node) *yaml.Node {
	switch v := n.(type) {
	case Directory:
		return encodeDirectory(v)
	case FileList:
		return encodeFileList(v)
	default:
		return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	}
}

func encodeFileList(fl FileList) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, e := range fl.Entries {
		name := e.Name
		if e.Kind == EntryDir {
			name += dirSuffix
		}
		seq.Content = append(seq.Content, scalar(name))
	}
	return seq
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func quoted(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
