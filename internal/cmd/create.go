package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/archivetools/datforge/dat"
	"github.com/archivetools/datforge/progress"
)

// NewCreateCmd creates and returns the create subcommand for the datforge
// CLI. It walks SOURCE, hashes every file, and writes the DAT to OUTPUT.
func NewCreateCmd() *cobra.Command {
	var (
		name         string
		description  string
		category     string
		datVersion   string
		date         string
		author       string
		comment      string
		url          string
		forcepacking string
		gameDepth    int
		looseFiles   string
		stripExt     bool
		interactive  bool
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "create SOURCE OUTPUT",
		Short: "Generate a DAT file from a directory tree",
		Long: `Walk SOURCE, hash every file (CRC-32, MD5, SHA-1), and write a
RomVault/clrmamepro-compatible XML DAT to OUTPUT.

The folder level at --game-depth becomes the <game> boundary; folders above
it become nested <dir> elements and deeper paths fold into rom names. Files
without a folder at the boundary are wrapped according to --loose-files:
"strip" names a game after each file, "parent" turns their shared parent
folder into the game.

Exit status is 0 on success, 1 on a fatal error, and 2 when the DAT was
written but at least one file had to be skipped.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			policy, err := dat.ParseLoosePolicy(looseFiles)
			if err != nil {
				log.Fatalf("Invalid --loose-files: %v", err)
			}
			packing, err := dat.ParseForcePacking(forcepacking)
			if err != nil {
				log.Fatalf("Invalid --forcepacking: %v", err)
			}

			opts := dat.DefaultOptions()
			opts.Source = args[0]
			opts.Output = args[1]
			opts.GameDepth = gameDepth
			opts.LooseFiles = policy
			opts.StripExt = stripExt
			opts.Header = dat.Header{
				Name:         name,
				Description:  description,
				Category:     category,
				Version:      datVersion,
				Date:         date,
				Author:       author,
				Comment:      comment,
				URL:          url,
				ForcePacking: packing,
			}

			if interactive {
				if err := promptHeader(os.Stdin, os.Stderr, &opts); err != nil {
					log.Fatalf("Reading prompts: %v", err)
				}
			}
			if opts.Header.Date == "" {
				opts.Header.Date = time.Now().Format("2006-01-02")
			}

			runCreate(cmd.Context(), opts, quiet)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "<name> header field")
	cmd.Flags().StringVar(&description, "description", "", "<description> header field")
	cmd.Flags().StringVar(&category, "category", "", "<category> header field")
	cmd.Flags().StringVar(&datVersion, "dat-version", "", "<version> header field")
	cmd.Flags().StringVar(&date, "date", "", "<date> header field (YYYY-MM-DD, blank = today)")
	cmd.Flags().StringVar(&author, "author", "", "<author> header field")
	cmd.Flags().StringVar(&comment, "comment", "", "<comment> header field")
	cmd.Flags().StringVar(&url, "url", "", "<url> header field")
	cmd.Flags().StringVar(&forcepacking, "forcepacking", "", "RomVault packing directive (fileonly, archive, or split)")
	cmd.Flags().IntVar(&gameDepth, "game-depth", 1, "Folder level that becomes a <game> (0 = one global game)")
	cmd.Flags().StringVar(&looseFiles, "loose-files", "strip", "Policy for files without a game folder (strip or parent)")
	cmd.Flags().BoolVar(&stripExt, "strip-ext", true, "Strip extensions from strip-policy game names (--strip-ext=false keeps them)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "I", false, "Prompt for unset header fields")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the progress display")

	return cmd
}

func runCreate(ctx context.Context, opts dat.Options, quiet bool) {
	var obs dat.Observer = dat.NopObserver{}
	var renderer *progress.Renderer
	if !quiet {
		renderer = progress.NewRenderer(os.Stderr, terminalWidth())
		obs = renderer
	}

	stats, err := dat.Generate(ctx, opts, obs)
	if renderer != nil {
		renderer.Finish()
	}

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(os.Stderr, "Interrupted; partial DAT with %d records written to %s\n",
			stats.Files, opts.Output)
		os.Exit(1)
	case err != nil:
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s: %d files, %s hashed\n",
		opts.Output, stats.Files, progress.FormatSize(stats.Bytes))
	if stats.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d files skipped\n", stats.Skipped)
		os.Exit(2)
	}
}

// terminalWidth reads COLUMNS when the shell exports it; the renderer falls
// back to 80 columns otherwise.
func terminalWidth() int {
	var cols int
	fmt.Sscanf(os.Getenv("COLUMNS"), "%d", &cols)
	return cols
}
