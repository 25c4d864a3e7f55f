package heap

import "github.com/pkg/errors"

// Source hands out zeroed memory for heap segments.
type Source interface {
	Acquire(size int) ([]byte, error)
	Release(mem []byte) error
}

// NewSource maps a configuration name to a Source.
func NewSource(name string) (Source, error) {
	switch name {
	case "", "go":
		return GoSource{}, nil
	case "mmap":
		return MmapSource{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownSource, "'%s'", name)
}

// GoSource backs segments with Go byte slices.
type GoSource struct{}

func (GoSource) Acquire(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (GoSource) Release([]byte) error {
	return nil
}
