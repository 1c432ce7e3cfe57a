package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archivetools/datforge/dat"
	"github.com/archivetools/datforge/progress"
)

// NewScanCmd creates and returns the scan subcommand for the datforge CLI.
// It previews the classification a create run would produce, without
// hashing anything.
func NewScanCmd() *cobra.Command {
	var (
		name       string
		gameDepth  int
		looseFiles string
		stripExt   bool
	)

	cmd := &cobra.Command{
		Use:   "scan SOURCE",
		Short: "Preview the category/game/rom classification for a tree",
		Long: `Walk SOURCE and print where each file would land in the DAT, without
computing any checksums.

Useful for tuning --game-depth and --loose-files before committing to a
full hashing run.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			policy, err := dat.ParseLoosePolicy(looseFiles)
			if err != nil {
				log.Fatalf("Invalid --loose-files: %v", err)
			}
			opts := dat.DefaultOptions()
			opts.Source = args[0]
			opts.GameDepth = gameDepth
			opts.LooseFiles = policy
			opts.StripExt = stripExt
			opts.Header.Name = name
			runScan(opts)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "DAT name (used as the depth-0 game name)")
	cmd.Flags().IntVar(&gameDepth, "game-depth", 1, "Folder level that becomes a <game> (0 = one global game)")
	cmd.Flags().StringVar(&looseFiles, "loose-files", "strip", "Policy for files without a game folder (strip or parent)")
	cmd.Flags().BoolVar(&stripExt, "strip-ext", true, "Strip extensions from strip-policy game names")

	return cmd
}

func runScan(opts dat.Options) {
	entries, total, skipped, err := dat.Discover(opts.Source, nil)
	if err != nil {
		log.Fatalf("Walking %s: %v", opts.Source, err)
	}

	classifier := dat.NewClassifier(opts)
	games := make(map[string]int)
	dirs := make(map[string]struct{})

	for _, e := range entries {
		loc := classifier.Classify(e.Parts)
		gameKey := strings.Join(append(loc.Categories, loc.Group), "/")
		games[gameKey]++
		for i := range loc.Categories {
			dirs[strings.Join(loc.Categories[:i+1], "/")] = struct{}{}
		}

		where := loc.Group
		if len(loc.Categories) > 0 {
			where = strings.Join(loc.Categories, "/") + " > " + loc.Group
		}
		fmt.Printf("%-50s  game=%q rom=%q\n", where, loc.Group, loc.Record)
	}

	fmt.Printf("\n%d files (%s), %d games, %d dirs",
		len(entries), progress.FormatSize(total), len(games), len(dirs))
	if skipped > 0 {
		fmt.Printf(", %d unreadable", skipped)
	}
	fmt.Println()
}
