package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mfgforge/mfg-scaffold/internal/platform"
	"github.com/mfgforge/mfg-scaffold/internal/tree"
)

// DefaultMarker is the comment marker written before a file's name.
const DefaultMarker = "//"

// Options controls how a tree is materialized.
type Options struct {
	// Overwrite truncates and rewrites files that already exist. When false,
	// existing files are left untouched and reported as skipped.
	Overwrite bool
	// DryRun reports what would be created without touching the filesystem.
	DryRun   bool
	Marker   string
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// DefaultOptions returns the options of a plain run: overwrite on, "//"
// marker, 0755 directories and 0644 files.
func DefaultOptions() Options {
	return Options{
		Overwrite: true,
		Marker:    DefaultMarker,
		DirPerm:   platform.DirPermNormal,
		FilePerm:  platform.FilePermNormal,
	}
}

// Result holds the outcome of a run, in creation order.
type Result struct {
	Dirs    []string
	Files   []string
	Skipped []string
}

// Materializer creates trees on a filesystem.
type Materializer struct {
	fs   afero.Fs
	out  io.Writer
	log  logrus.FieldLogger
	opts Options
}

// New returns a Materializer writing to fsys and reporting progress to out.
// Zero-valued Marker and permission options fall back to their defaults.
func New(fsys afero.Fs, out io.Writer, opts Options) *Materializer {
	def := DefaultOptions()
	if opts.Marker == "" {
		opts.Marker = def.Marker
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = def.DirPerm
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = def.FilePerm
	}
	if out == nil {
		out = io.Discard
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &Materializer{fs: fsys, out: out, log: discard, opts: opts}
}

// WithLogger sets the logger used for diagnostics.
func (m *Materializer) WithLogger(log logrus.FieldLogger) *Materializer {
	if log != nil {
		m.log = log
	}
	return m
}

// Materialize creates node under basePath. The tree is validated first and
// nothing is created when a name is invalid. Filesystem errors are returned
// as soon as they happen; whatever was created before stays on disk.
func (m *Materializer) Materialize(basePath string, node tree.Node) (*Result, error) {
	res := &Result{}
	if err := tree.Validate(node); err != nil {
		return res, fmt.Errorf("invalid tree: %w", err)
	}
	m.log.WithFields(logrus.Fields{
		"base":    basePath,
		"dry_run": m.opts.DryRun,
	}).Debug("materializing tree")

	if err := m.materialize(res, basePath, node); err != nil {
		return res, err
	}

	m.log.WithFields(logrus.Fields{
		"dirs":    len(res.Dirs),
		"files":   len(res.Files),
		"skipped": len(res.Skipped),
	}).Debug("tree materialized")
	return res, nil
}

func (m *Materializer) materialize(res *Result, base string, node tree.Node) error {
	switch n := node.(type) {
	case tree.Directory:
		for _, member := range n.Members {
			switch v := member.(type) {
			case tree.Folder:
				path, err := platform.SafeJoin(base, v.Name)
				if err != nil {
					return err
				}
				if err := m.mkdir(res, path); err != nil {
					return err
				}
				if err := m.materialize(res, path, v.Node); err != nil {
					return err
				}
			case tree.FileList:
				if err := m.leaves(res, base, v); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported member type %T", member)
			}
		}
		return nil
	case tree.FileList:
		return m.leaves(res, base, n)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported node type %T", node)
	}
}

func (m *Materializer) leaves(res *Result, base string, fl tree.FileList) error {
	for _, e := range fl.Entries {
		path, err := platform.SafeJoin(base, e.Name)
		if err != nil {
			return err
		}
		switch e.Kind {
		case tree.EntryDir:
			err = m.mkdir(res, path)
		default:
			err = m.writeFile(res, path, e.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// mkdir creates path and its parents. An existing directory is not an error.
func (m *Materializer) mkdir(res *Result, path string) error {
	if !m.opts.DryRun {
		existed, err := afero.DirExists(m.fs, path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if err := m.fs.MkdirAll(path, m.opts.DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
		// MkdirAll is subject to umask; only fix up directories we created.
		if !existed {
			if err := platform.Chmod(m.fs, path, m.opts.DirPerm); err != nil {
				return fmt.Errorf("setting permissions on %s: %w", path, err)
			}
		}
	}
	res.Dirs = append(res.Dirs, path)
	fmt.Fprintf(m.out, "Created folder: %s\n", path)
	return nil
}

// writeFile creates or truncates path with the placeholder line for name.
func (m *Materializer) writeFile(res *Result, path, name string) error {
	if !m.opts.Overwrite {
		exists, err := afero.Exists(m.fs, path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if exists {
			m.log.WithField("path", path).Debug("keeping existing file")
			res.Skipped = append(res.Skipped, path)
			fmt.Fprintf(m.out, "Skipped file: %s\n", path)
			return nil
		}
	}

	if !m.opts.DryRun {
		if err := afero.WriteFile(m.fs, path, Placeholder(m.opts.Marker, name), m.opts.FilePerm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	res.Files = append(res.Files, path)
	fmt.Fprintf(m.out, "Created file: %s\n", path)
	return nil
}

// Placeholder returns the content written into a generated file: the marker,
// a space, the file name and a newline.
func Placeholder(marker, name string) []byte {
	return []byte(marker + " " + name + "\n")
}

// Materialize creates node under basePath on the OS filesystem with default
// options, reporting progress to w.
func Materialize(w io.Writer, basePath string, node tree.Node) error {
	_, err := New(afero.NewOsFs(), w, DefaultOptions()).Materialize(filepath.Clean(basePath), node)
	return err
}
