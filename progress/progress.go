// Package progress renders pipeline progress as a single terminal status
// line: the file currently being hashed, a running counter, and a rolling
// ETA over completed bytes.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/taigrr/colorhash"
)

// etaWindow is the length of the rolling window used for throughput
// estimation. Short enough to track speed changes between large and small
// files, long enough to smooth per-file jitter.
const etaWindow = 30 * time.Second

const defaultWidth = 80

type sample struct {
	at   time.Time
	done int64
}

// Renderer implements dat.Observer by rewriting one status line on w.
// It is driven from the single traversal goroutine and needs no locking.
type Renderer struct {
	w     io.Writer
	width int
	color bool
	now   func() time.Time

	total      int
	totalBytes int64
	doneBytes  int64
	window     []sample
}

// NewRenderer returns a Renderer writing to w. width is the terminal column
// count; values <= 0 fall back to 80. Colors are suppressed when NO_COLOR
// is set.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{
		w:     w,
		width: width,
		color: os.Getenv("NO_COLOR") == "",
		now:   time.Now,
	}
}

// WalkDone prints the discovery summary before hashing begins.
func (r *Renderer) WalkDone(files int, totalBytes int64) {
	r.total = files
	r.totalBytes = totalBytes
	fmt.Fprintf(r.w, "Found %d files (%s), hashing...\n", files, FormatSize(totalBytes))
}

// FileStart announces the file about to be hashed. It fires before the
// digest starts, so the line is current even while a large file hashes.
func (r *Renderer) FileStart(relPath string, size int64, index int) {
	r.render(relPath, size, index)
}

// FileDone accounts the completed bytes for ETA estimation.
func (r *Renderer) FileDone(relPath string, size int64) {
	r.doneBytes += size

	now := r.now()
	r.window = append(r.window, sample{at: now, done: r.doneBytes})
	for len(r.window) > 1 && now.Sub(r.window[0].at) > etaWindow {
		r.window = r.window[1:]
	}
}

// FileSkipped leaves a permanent warning line above the status line.
func (r *Renderer) FileSkipped(relPath string, err error) {
	fmt.Fprintf(r.w, "\r%s\nskipping %s: %v\n", strings.Repeat(" ", r.width), relPath, err)
}

// Finish terminates the status line once the run is over.
func (r *Renderer) Finish() {
	fmt.Fprint(r.w, "\n")
}

func (r *Renderer) render(relPath string, size int64, index int) {
	counter := fmt.Sprintf("[%d/%d", index+1, r.total)
	if eta := r.eta(); eta != "" {
		counter += " eta " + eta
	}
	counter += "]"

	sizeStr := FormatSize(size)
	avail := r.width - len(sizeStr) - len(counter) - 4
	if avail < 8 {
		avail = 8
	}
	path := relPath
	if len(path) > avail {
		path = "..." + path[len(path)-avail+3:]
	}

	line := fmt.Sprintf("%s | %s %s", sizeStr, r.colorize(relPath, path), counter)
	pad := r.width - len(sizeStr) - len(path) - len(counter) - 4
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(r.w, "\r%s%s", line, strings.Repeat(" ", pad))
}

// colorize paints the path with a color derived from its top-level
// component, so files from the same category share a hue across the run.
func (r *Renderer) colorize(relPath, display string) string {
	if !r.color {
		return display
	}
	top := relPath
	if i := strings.IndexByte(relPath, '/'); i >= 0 {
		top = relPath[:i]
	}
	// 216-color cube, skipping the primary and grayscale ranges.
	code := 16 + colorhash.HashString(top)%216
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, display)
}

// eta estimates time remaining from throughput over the rolling window.
// Empty until the window holds at least two samples.
func (r *Renderer) eta() string {
	if len(r.window) < 2 || r.totalBytes == 0 {
		return ""
	}
	first := r.window[0]
	last := r.window[len(r.window)-1]
	span := last.at.Sub(first.at).Seconds()
	if span <= 0 {
		return ""
	}
	speed := float64(last.done-first.done) / span
	if speed <= 0 {
		return ""
	}
	remaining := time.Duration(float64(r.totalBytes-r.doneBytes)/speed) * time.Second
	if remaining < 0 {
		remaining = 0
	}
	return remaining.Truncate(time.Second).String()
}

// FormatSize renders a byte count in binary units with two decimals.
func FormatSize(b int64) string {
	if b == 0 {
		return "0 B"
	}
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	e := 0
	for v := b; v >= 1024 && e < len(units)-1; v >>= 10 {
		e++
	}
	if e == 0 {
		return fmt.Sprintf("%d B", b)
	}
	return fmt.Sprintf("%.2f %s", float64(b)/float64(int64(1)<<(10*e)), units[e])
}
