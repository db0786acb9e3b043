package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mfgforge/mfg-scaffold/internal/blueprint"
	"github.com/mfgforge/mfg-scaffold/internal/config"
	"github.com/mfgforge/mfg-scaffold/internal/scaffold"
	"github.com/mfgforge/mfg-scaffold/internal/tree"
)

var (
	genDir       string
	genTree      string
	genNoClobber bool
	genDryRun    bool
	genMarker    string
	genVerbose   bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&genDir, "dir", "", "Base directory (default: current directory)")
	f.StringVar(&genTree, "tree", "", "Tree document (YAML) to use instead of the built-in backend blueprint")
	f.BoolVar(&genNoClobber, "no-clobber", false, "Keep files that already exist instead of rewriting them")
	f.BoolVar(&genDryRun, "dry-run", false, "Print what would be created without touching the filesystem")
	f.StringVar(&genMarker, "marker", "//", "Comment marker written before the file name")
	f.BoolVarP(&genVerbose, "verbose", "v", false, "Enable debug logging on stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config.Load()
	log := newLogger(cmd.ErrOrStderr(), genVerbose || config.Verbose())

	base := genDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		base = cwd
	}

	doc := blueprint.Document()
	if genTree != "" {
		loaded, err := tree.LoadFile(genTree)
		if err != nil {
			return err
		}
		doc = loaded
	}
	log.WithField("tree", doc.Name).WithField("version", doc.Version).Debug("tree document selected")

	opts := scaffold.DefaultOptions()
	opts.Overwrite = config.Overwrite() && !genNoClobber
	opts.Marker = config.Marker()
	if cmd.Flags().Changed("marker") {
		opts.Marker = genMarker
	}
	opts.DryRun = genDryRun

	out := cmd.OutOrStdout()
	m := scaffold.New(afero.NewOsFs(), out, opts).WithLogger(log)
	if _, err := m.Materialize(base, doc.Root); err != nil {
		return err
	}

	if genDryRun {
		fmt.Fprintln(out, "\nDry run: nothing was written.")
		return nil
	}
	fmt.Fprintf(out, "\n✅ %s structure created successfully!\n", title(doc.Name))
	return nil
}

// title upper-cases the first letter of each word of a document name
// ("backend" → "Backend").
func title(name string) string {
	if name == "" {
		return "Project"
	}
	return cases.Title(language.Und, cases.NoLower).String(name)
}
