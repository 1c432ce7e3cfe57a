package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the datforge CLI.
// It generates a category/game/file tree for exercising the generator.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		categories int
		games      int
		files      int
		loose      int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a test directory tree",
		Long: `Generate a Category-N/Game-N/file tree with randomized content for
testing the generator.

Each game folder receives the requested number of files, each holding a few
UUID lines so checksums differ between files. Optionally a number of loose
files is dropped directly into each category folder to exercise the
loose-file policies.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, categories, games, files, loose, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVar(&categories, "categories", 3, "Number of category folders")
	cmd.Flags().IntVar(&games, "games", 5, "Number of game folders per category")
	cmd.Flags().IntVar(&files, "files", 4, "Number of files per game")
	cmd.Flags().IntVar(&loose, "loose", 0, "Number of loose files per category")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, categories, games, files, loose int, verbose bool) {
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	extensions := []string{".bin", ".rom", ".txt", ".dat"}
	created := 0

	for c := 1; c <= categories; c++ {
		catDir := filepath.Join(outputPath, fmt.Sprintf("Category-%02d", c))

		for g := 1; g <= games; g++ {
			gameDir := filepath.Join(catDir, fmt.Sprintf("Game-%02d", g))
			if err := os.MkdirAll(gameDir, 0755); err != nil {
				log.Fatalf("Failed to create directory %s: %v", gameDir, err)
			}
			for f := 1; f <= files; f++ {
				name := fmt.Sprintf("file-%02d%s", f, pick(extensions))
				if err := writeSeedFile(filepath.Join(gameDir, name)); err != nil {
					log.Fatalf("Failed to write %s: %v", name, err)
				}
				created++
			}
		}

		for l := 1; l <= loose; l++ {
			name := fmt.Sprintf("loose-%02d%s", l, pick(extensions))
			if err := writeSeedFile(filepath.Join(catDir, name)); err != nil {
				log.Fatalf("Failed to write %s: %v", name, err)
			}
			created++
		}

		if verbose {
			fmt.Printf("Seeded %s\n", catDir)
		}
	}

	fmt.Printf("Created %d files under %s\n", created, outputPath)
}

// writeSeedFile fills path with a random number of UUID lines so every
// seeded file digests differently.
func writeSeedFile(path string) error {
	lines, _ := rand.Int(rand.Reader, big.NewInt(8))
	var sb strings.Builder
	for range int(lines.Int64()) + 1 {
		sb.WriteString(uuid.New().String())
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func pick(options []string) string {
	i, _ := rand.Int(rand.Reader, big.NewInt(int64(len(options))))
	return options[i.Int64()]
}
