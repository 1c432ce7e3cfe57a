package cmd

import (
	"github.com/spf13/cobra"

	"github.com/archivetools/datforge/version"
)

// NewRootCmd creates and returns the root cobra command for the datforge CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datforge",
		Short: "datforge - Generate RomVault/clrmamepro DAT files from directory trees",
		Long: `datforge generates RomVault / clrmamepro-compatible XML DAT files from
existing directory trees.

Every file under a source root is hashed (CRC-32, MD5, SHA-1) and placed
into a category/game/rom hierarchy. A configurable grouping depth decides
which folder level becomes a <game>, and a loose-file policy decides how
files without such a folder are wrapped.

Use subcommands to perform different operations:
  - create: Walk a directory tree, hash every file, and write a DAT
  - scan: Preview the category/game/rom classification without hashing
  - seed: Generate test directory trees for exercising the generator`,
		Version: version.GetFullVersion(),
	}

	groupGenerate := "generate"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupGenerate,
		Title: "DAT Generation",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	createCmd := NewCreateCmd()
	scanCmd := NewScanCmd()
	seedCmd := NewSeedCmd()

	createCmd.GroupID = groupGenerate
	scanCmd.GroupID = groupGenerate
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
