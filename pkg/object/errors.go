package object

import "github.com/pkg/errors"

var (
	ErrNoHeap          = errors.New("runtime requires a heap")
	ErrUnknownTable    = errors.New("unknown dispatch table")
	ErrTableCollision  = errors.New("dispatch table id collision")
	ErrDuplicateMethod = errors.New("duplicate method")
	ErrNoSuchMethod    = errors.New("no such method")
	ErrBadSlot         = errors.New("bad dispatch slot")
	ErrArity           = errors.New("wrong number of arguments")
	ErrOutOfBounds     = errors.New("out of bounds")
)
