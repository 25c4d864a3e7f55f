package config

type HeapConfig struct {
	// ChunkSize is the size of a regular heap segment in bytes.
	ChunkSize int
	// MaxBytes caps the bytes handed out by the heap. 0 means unlimited.
	MaxBytes int
	// Source is either "go" or "mmap".
	Source string
}

func NewHeapConfig() *HeapConfig {
	return &HeapConfig{
		ChunkSize: 64 * 1024,
		MaxBytes:  0,
		Source:    "go",
	}
}
