package dat

// Observer receives progress events from the pipeline. FileStart fires
// before a file is digested, so a UI always shows the file currently being
// hashed; the pipeline never interrupts a digest to report progress.
//
// All methods are called from the single traversal goroutine.
type Observer interface {
	// WalkDone reports the discovery result: how many files will be
	// processed and their combined size in bytes.
	WalkDone(files int, totalBytes int64)
	// FileStart announces the file about to be digested.
	FileStart(relPath string, size int64, index int)
	// FileDone reports a file whose record made it into the catalog.
	FileDone(relPath string, size int64)
	// FileSkipped reports a file dropped from the run. The record is
	// discarded; the run continues.
	FileSkipped(relPath string, err error)
}

// NopObserver discards all progress events.
type NopObserver struct{}

func (NopObserver) WalkDone(int, int64)          {}
func (NopObserver) FileStart(string, int64, int) {}
func (NopObserver) FileDone(string, int64)       {}
func (NopObserver) FileSkipped(string, error)    {}
