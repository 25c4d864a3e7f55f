package heap

import "github.com/pkg/errors"

// ErrOutOfMemory is returned when a request can not be satisfied, either
// because the configured limit is reached or the source refused memory.
var ErrOutOfMemory = errors.New("out of memory")

var ErrInvalidSize = errors.New("invalid allocation size")
var ErrUnknownSource = errors.New("unknown memory source")

// ErrBadAddress is the panic value for accesses outside the arena.
var ErrBadAddress = errors.New("bad address")
