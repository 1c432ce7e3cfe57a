package dat

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Entry is one file found during discovery: its absolute path, its
// slash-separated path relative to the source root, the split components,
// and its size.
type Entry struct {
	Path  string
	Rel   string
	Parts []string
	Size  int64
}

// Stats summarizes a finished (or interrupted) run.
type Stats struct {
	Files   int   // records written to the catalog
	Skipped int   // files dropped due to access failures
	Bytes   int64 // bytes hashed
}

// Discover walks root once in lexical order and returns the files to
// catalog plus their combined size. Entries that cannot be inspected are
// reported to obs, counted, and skipped; an error on the root itself is
// fatal.
func Discover(root string, obs Observer) ([]Entry, int64, int, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	var (
		entries []Entry
		total   int64
		skipped int
	)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			obs.FileSkipped(filepath.ToSlash(rel), err)
			skipped++
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// Stat follows symlinks, matching what the digest pass will
		// read. A dangling link is an access failure, not a record.
		info, statErr := os.Stat(p)
		if statErr != nil {
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			obs.FileSkipped(filepath.ToSlash(rel), statErr)
			skipped++
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		entries = append(entries, Entry{
			Path:  p,
			Rel:   rel,
			Parts: strings.Split(rel, "/"),
			Size:  info.Size(),
		})
		total += info.Size()
		return nil
	})
	return entries, total, skipped, err
}

// Generate runs the full pipeline: discover, classify, digest, insert,
// serialize. Per-file failures are skipped and counted; walk failures on the
// root and output failures abort the run.
//
// Cancellation is honored between files only, so an interrupted run still
// writes a catalog holding a strict prefix of fully digested records, and
// the context error is returned alongside the stats.
func Generate(ctx context.Context, opts Options, obs Observer) (Stats, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}

	entries, total, skipped, err := Discover(opts.Source, obs)
	if err != nil {
		return Stats{}, fmt.Errorf("walking %s: %w", opts.Source, err)
	}
	obs.WalkDone(len(entries), total)

	classifier := NewClassifier(opts)
	builder := NewBuilder(opts.Header)
	stats := Stats{Skipped: skipped}

	var canceled error
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			canceled = err
			break
		}
		obs.FileStart(e.Rel, e.Size, i)

		loc := classifier.Classify(e.Parts)
		d, err := DigestFile(e.Path)
		if err != nil {
			obs.FileSkipped(e.Rel, err)
			stats.Skipped++
			continue
		}
		builder.Insert(loc.Categories, loc.Group, FileRecord{
			Name:  loc.Record,
			Size:  d.Size,
			CRC32: d.CRC32,
			MD5:   d.MD5,
			SHA1:  d.SHA1,
		})
		stats.Files++
		stats.Bytes += d.Size
		obs.FileDone(e.Rel, d.Size)
	}

	if err := writeCatalog(opts.Output, builder.Catalog()); err != nil {
		return stats, err
	}
	return stats, canceled
}

// writeCatalog serializes the catalog to a temporary file beside the target
// and renames it into place, so a failed write never leaves a truncated file
// at the output path.
func writeCatalog(path string, c *Catalog) error {
	tmp := filepath.Join(filepath.Dir(path),
		"."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := WriteXML(f, c); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}
