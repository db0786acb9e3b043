package tree

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse_PreservesOrderAndShapes(t *testing.T) {
	doc := parseTestdata(t, "valid-backend.yaml")

	if doc.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", doc.Version, "1.0.0")
	}
	if doc.Name != "backend" {
		t.Errorf("Name = %q, want %q", doc.Name, "backend")
	}

	want := Dir(
		Sub("backend", Dir(
			Sub(".github", Dir(Sub("workflows", Leaves(File("ci.yml"))))),
			Sub("prisma", Leaves(File("schema.prisma"), EmptyDir("migrations"))),
			Sub("src", Dir(
				Leaves(File("app.ts"), File("server.ts")),
				Sub("db", Leaves()),
			)),
			Leaves(File("README.md")),
		)),
	)
	assertSameTree(t, doc.Root, want)
}

func TestParse_NullFolderIsEmpty(t *testing.T) {
	doc := parseTestdata(t, "valid-null-folder.yaml")
	want := Dir(
		Sub("a", FileList{}),
		Sub("b", Leaves(File("y.txt"), EmptyDir("sub"))),
		Sub("c", Dir(FileList{})),
	)
	assertSameTree(t, doc.Root, want)
}

func TestParse_NonStringNames(t *testing.T) {
	doc := parseTestdata(t, "valid-numeric-names.yaml")
	want := Dir(
		Sub("releases", Dir(
			Sub("2024", Leaves(File("notes.md"))),
			Sub("1.0", Leaves(File("2024"), File("CHANGELOG.md"))),
			Sub("true", Leaves()),
		)),
	)
	assertSameTree(t, doc.Root, want)
}

func TestParse_FollowsAliases(t *testing.T) {
	doc := parseTestdata(t, "valid-aliases.yaml")
	want := Dir(
		Sub("shared", Dir(Leaves(File("index.ts")), Sub("dto", Leaves()))),
		Sub("stock", Leaves(File("stock.service.ts"), File("stock.routes.ts"))),
		Sub("bom", Leaves(File("stock.service.ts"), File("stock.routes.ts"))),
		Sub("workorder", Dir(
			Leaves(File("index.ts")),
			Sub("dto", Leaves()),
			Sub("tests", Leaves()),
		)),
	)
	assertSameTree(t, doc.Root, want)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		desc string
		data string
	}{
		{"empty document", ""},
		{"not a mapping", "- a\n- b\n"},
		{"missing tree", "version: \"1.0.0\"\n"},
		{"unknown field", "version: \"1.0.0\"\nowner: x\ntree: {}\n"},
		{"files not a list", "version: \"1.0.0\"\ntree:\n  a:\n    _files: x.txt\n"},
		{"scalar folder", "version: \"1.0.0\"\ntree:\n  a: x.txt\n"},
		{"nested list item", "version: \"1.0.0\"\ntree:\n  a: [[x.txt]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) expected error", tt.data)
			}
		})
	}
}

func TestEncode_ParsesBack(t *testing.T) {
	in := &Document{Version: CurrentVersion, Name: "sample", Root: sample()}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	text := string(data)
	for _, s := range []string{`version: "1.0.0"`, "name: sample", "_files: [root.md]", "b: [y.txt, sub/]"} {
		if !strings.Contains(text, s) {
			t.Errorf("encoded document missing %q\n--- document ---\n%s", s, text)
		}
	}

	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v", err)
	}
	assertSameTree(t, out.Root, in.Root)
}

func TestEncode_MergesLeafLists(t *testing.T) {
	in := &Document{
		Version: CurrentVersion,
		Root:    Dir(Leaves(File("a")), Sub("d", Leaves()), Leaves(File("b"))),
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if n := strings.Count(string(data), FilesKey); n != 1 {
		t.Fatalf("expected one %s key, got %d\n%s", FilesKey, n, data)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertSameTree(t, out.Root, Dir(Leaves(File("a"), File("b")), Sub("d", Leaves())))
}

func TestLoadFile(t *testing.T) {
	accepted := []struct {
		file string
		want Stats
	}{
		{"valid-backend.yaml", Stats{Folders: 6, Files: 5, EmptyDirs: 1}},
		{"valid-null-folder.yaml", Stats{Folders: 3, Files: 1, EmptyDirs: 1}},
		{"valid-numeric-names.yaml", Stats{Folders: 4, Files: 3}},
		{"valid-aliases.yaml", Stats{Folders: 7, Files: 6}},
	}
	for _, tt := range accepted {
		t.Run(tt.file, func(t *testing.T) {
			doc, err := LoadFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if got := Count(doc.Root); got != tt.want {
				t.Errorf("Count() = %+v, want %+v", got, tt.want)
			}
		})
	}

	rejected := []struct {
		file string
		want string
	}{
		{"invalid-missing-tree.yaml", "schema"},
		{"invalid-nested-path.yaml", "schema"},
		{"invalid-unknown-field.yaml", "schema"},
		{"unsupported-version.yaml", "not supported"},
		{"invalid-dot-name.yaml", "invalid name"},
		{"invalid-not-yaml.yaml", "YAML"},
		{"nonexistent.yaml", "reading file"},
	}
	for _, tt := range rejected {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadFile(testPath(tt.file))
			if err == nil {
				t.Fatalf("LoadFile(%s) expected error", tt.file)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func parseTestdata(t *testing.T, name string) *Document {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s) error: %v", name, err)
	}
	return doc
}

// assertSameTree compares trees ignoring nil-vs-empty entry slices.
func assertSameTree(t *testing.T, got, want Node) {
	t.Helper()
	if !reflect.DeepEqual(flatten(t, got), flatten(t, want)) {
		t.Errorf("trees differ\n got: %v\nwant: %v", flatten(t, got), flatten(t, want))
	}
}

func flatten(t *testing.T, n Node) []string {
	t.Helper()
	var out []string
	if err := Walk(n, func(v Visit) error {
		out = append(out, v.Kind.String()+":"+v.Path)
		return nil
	}); err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	return out
}
