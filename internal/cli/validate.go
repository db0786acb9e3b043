package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfgforge/mfg-scaffold/internal/tree"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tree document",
	Long: `Check a tree document against the tree schema, the supported document
versions and the naming rules, then print what it would create.

Example:
  mfg-scaffold validate layout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		result, err := tree.ValidateSchemaFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			fmt.Fprintf(out, "%s is invalid:\n", path)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  - %s\n", issue)
			}
			return fmt.Errorf("%s: %d schema issue(s)", path, len(result.Issues))
		}

		doc, err := tree.LoadFile(path)
		if err != nil {
			return err
		}

		stats := tree.Count(doc.Root)
		fmt.Fprintf(out, "%s is valid (version %s)\n", path, doc.Version)
		fmt.Fprintf(out, "  folders:     %d\n", stats.Folders)
		fmt.Fprintf(out, "  files:       %d\n", stats.Files)
		fmt.Fprintf(out, "  empty dirs:  %d\n", stats.EmptyDirs)
		return nil
	},
}
