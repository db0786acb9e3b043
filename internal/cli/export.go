package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfgforge/mfg-scaffold/internal/blueprint"
	"github.com/mfgforge/mfg-scaffold/internal/tree"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the built-in blueprint as a tree document",
	Long: `Print the built-in backend blueprint as a YAML tree document. Edit the
result and pass it back with --tree to scaffold a different layout.

Example:
  mfg-scaffold export -o layout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := tree.Encode(blueprint.Document())
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOut)
		return nil
	},
}
