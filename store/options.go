package store

// Backing selects where the cell block lives.
type Backing int

const (
	// BackingHeap allocates the block on the Go heap.
	BackingHeap Backing = iota

	// BackingMmap maps an anonymous private region (Linux and macOS; heap elsewhere).
	BackingMmap
)

func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// Options configures a Store.
type Options struct {
	// Backing determines how the block is obtained.
	// Default: BackingHeap
	Backing Backing
}

// DefaultOptions returns the options used when New is passed nil.
func DefaultOptions() *Options {
	return &Options{Backing: BackingHeap}
}
