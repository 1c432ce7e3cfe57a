package dat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// sampleTree builds the layout used by the end-to-end tests:
//
//	Category-A/
//	  Game-1/
//	    a.bin            "hello world"
//	    docs/manual.txt  "The quick brown fox jumps over the lazy dog"
//	  loose.txt          (empty)
func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "Category-A", "Game-1", "a.bin"), "hello world")
	mustWrite(t, filepath.Join(root, "Category-A", "Game-1", "docs", "manual.txt"),
		"The quick brown fox jumps over the lazy dog")
	mustWrite(t, filepath.Join(root, "Category-A", "loose.txt"), "")
	return root
}

func TestGenerate(t *testing.T) {
	root := sampleTree(t)
	out := filepath.Join(t.TempDir(), "test.dat")

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = out
	opts.Header = Header{Name: "Test Set", Date: "2024-01-02"}

	stats, err := Generate(context.Background(), opts, nil)
	require.NoError(t, err)
	require.Equal(t, Stats{Files: 3, Skipped: 0, Bytes: 54}, stats)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<datafile>`,
		`  <header>`,
		`    <name>Test Set</name>`,
		`    <date>2024-01-02</date>`,
		`  </header>`,
		`  <dir name="Category-A">`,
		`    <game name="Game-1">`,
		`      <rom name="a.bin" size="11" crc="0d4a1185" md5="5eb63bbbe01eeed093cb22bb8f5acdc3" sha1="2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"></rom>`,
		`      <rom name="docs/manual.txt" size="43" crc="414fa339" md5="9e107d9d372bb6826bd81d3542a419d6" sha1="2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"></rom>`,
		`    </game>`,
		`    <game name="loose">`,
		`      <rom name="loose.txt" size="0" crc="00000000" md5="d41d8cd98f00b204e9800998ecf8427e" sha1="da39a3ee5e6b4b0d3255bfef95601890afd80709"></rom>`,
		`    </game>`,
		`  </dir>`,
		`</datafile>`,
	}, "\n")
	require.Equal(t, want, string(got))
}

func TestGenerateDeterministic(t *testing.T) {
	root := sampleTree(t)
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.Source = root
	opts.Header = Header{Name: "Test Set", Date: "2024-01-02"}

	opts.Output = filepath.Join(outDir, "one.dat")
	_, err := Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	opts.Output = filepath.Join(outDir, "two.dat")
	_, err = Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	one, err := os.ReadFile(filepath.Join(outDir, "one.dat"))
	require.NoError(t, err)
	two, err := os.ReadFile(filepath.Join(outDir, "two.dat"))
	require.NoError(t, err)
	require.Equal(t, one, two, "identical inputs must produce byte-identical output")
}

func TestGenerateLoosePolicies(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "Category", "f1.txt"), "one")
	mustWrite(t, filepath.Join(root, "Category", "f2.txt"), "two")
	mustWrite(t, filepath.Join(root, "Category", "f3.txt"), "three")

	run := func(policy LoosePolicy) string {
		out := filepath.Join(t.TempDir(), "out.dat")
		opts := DefaultOptions()
		opts.Source = root
		opts.Output = out
		opts.LooseFiles = policy

		stats, err := Generate(context.Background(), opts, nil)
		require.NoError(t, err)
		require.Equal(t, 3, stats.Files)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		return string(got)
	}

	strip := run(LooseStrip)
	require.Equal(t, 3, strings.Count(strip, "<game "), "strip wraps each loose file in its own game")
	require.Contains(t, strip, `<game name="f1">`)
	require.Contains(t, strip, `<dir name="Category">`)

	parent := run(LooseParent)
	require.Equal(t, 1, strings.Count(parent, "<game "), "parent collapses loose siblings into one game")
	require.Contains(t, parent, `<game name="Category">`)
	require.Equal(t, 3, strings.Count(parent, "<rom "))
	require.NotContains(t, parent, "<dir ", "the parent folder becomes the game, not a category")
}

func TestGenerateDepthZero(t *testing.T) {
	root := sampleTree(t)
	out := filepath.Join(t.TempDir(), "out.dat")

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = out
	opts.GameDepth = 0
	opts.Header.Name = "Everything"

	stats, err := Generate(context.Background(), opts, nil)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Files)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	out0 := string(got)

	require.Equal(t, 1, strings.Count(out0, "<game "), "depth 0 uses a single implicit game")
	require.Contains(t, out0, `<game name="Everything">`)
	require.NotContains(t, out0, "<dir ")
	require.Contains(t, out0, `name="Category-A/Game-1/a.bin"`, "roms keep their full relative path")
}

func TestGenerateSkipsUnreadable(t *testing.T) {
	root := sampleTree(t)
	require.NoError(t, os.Symlink(
		filepath.Join(root, "no-such-target"),
		filepath.Join(root, "Category-A", "Game-1", "broken.bin")))
	out := filepath.Join(t.TempDir(), "out.dat")

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = out

	var skipped []string
	obs := &captureObserver{onSkip: func(rel string) { skipped = append(skipped, rel) }}

	stats, err := Generate(context.Background(), opts, obs)
	require.NoError(t, err, "an unreadable file must not abort the run")
	require.Equal(t, 3, stats.Files)
	require.Equal(t, 1, stats.Skipped)
	require.Equal(t, []string{"Category-A/Game-1/broken.bin"}, skipped)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotContains(t, string(got), "broken.bin", "skipped files stay out of the catalog")
}

func TestGenerateCanceled(t *testing.T) {
	root := sampleTree(t)
	out := filepath.Join(t.TempDir(), "out.dat")

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = out

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Generate(ctx, opts, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, stats.Files)

	// The completed prefix (here: nothing) is still written as a valid
	// document.
	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	require.Contains(t, string(got), "<datafile>")
	require.NotContains(t, string(got), "<rom ")
}

func TestGenerateObserverOrdering(t *testing.T) {
	root := sampleTree(t)
	out := filepath.Join(t.TempDir(), "out.dat")

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = out

	obs := &captureObserver{}
	_, err := Generate(context.Background(), opts, obs)
	require.NoError(t, err)

	// FileStart fires before the matching FileDone, in lexical walk order.
	require.Equal(t, []string{
		"start Category-A/Game-1/a.bin",
		"done Category-A/Game-1/a.bin",
		"start Category-A/Game-1/docs/manual.txt",
		"done Category-A/Game-1/docs/manual.txt",
		"start Category-A/loose.txt",
		"done Category-A/loose.txt",
	}, obs.events)
	require.Equal(t, 3, obs.walkFiles)
	require.Equal(t, int64(54), obs.walkBytes)
}

func TestGenerateConfigErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.dat")

	opts := DefaultOptions()
	opts.Output = out

	_, err := Generate(context.Background(), opts, nil)
	require.ErrorIs(t, err, ErrNoSource)
	require.NoFileExists(t, out, "configuration failures must surface before any output is written")
}

func TestGenerateOutputFailure(t *testing.T) {
	root := sampleTree(t)

	opts := DefaultOptions()
	opts.Source = root
	opts.Output = filepath.Join(t.TempDir(), "missing-dir", "out.dat")

	_, err := Generate(context.Background(), opts, nil)
	require.Error(t, err)
	require.NoFileExists(t, opts.Output)
}

// captureObserver records pipeline events for ordering assertions.
type captureObserver struct {
	events    []string
	walkFiles int
	walkBytes int64
	onSkip    func(rel string)
}

func (c *captureObserver) WalkDone(files int, totalBytes int64) {
	c.walkFiles = files
	c.walkBytes = totalBytes
}

func (c *captureObserver) FileStart(rel string, size int64, index int) {
	c.events = append(c.events, "start "+rel)
}

func (c *captureObserver) FileDone(rel string, size int64) {
	c.events = append(c.events, "done "+rel)
}

func (c *captureObserver) FileSkipped(rel string, err error) {
	if c.onSkip != nil {
		c.onSkip(rel)
	}
}
