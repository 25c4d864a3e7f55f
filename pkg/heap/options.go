package heap

import "github.com/sirupsen/logrus"

const defaultChunkSize = 64 * 1024

type Options struct {
	// ChunkSize is the size of a regular segment. Requests larger than a
	// chunk get a dedicated segment rounded up to a chunk multiple.
	ChunkSize int
	// MaxBytes limits the bytes handed out. 0 means unlimited.
	MaxBytes int
	Source   Source
	Logger   logrus.FieldLogger
}

var DefaultOptions = Options{
	ChunkSize: defaultChunkSize,
	Source:    GoSource{},
}
