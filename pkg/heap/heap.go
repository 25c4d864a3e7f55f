package heap

import (
	"encoding/binary"

	"go-minirt/util/helpers"
	"go-minirt/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var bin = binary.LittleEndian

// Word is the unit of every field stored in the heap.
type Word uint64

// Ref is an address inside the heap.
type Ref uint64

// Nil is never returned by Alloc.
const Nil Ref = 0

// WordSize is the width of a Word in bytes.
const WordSize = 8

func New(opts *Options) (*Heap, error) {
	if opts == nil {
		opts = &DefaultOptions
	}

	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = defaultChunkSize
	}
	if chunkSize < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "chunk size %d", chunkSize)
	}
	if opts.MaxBytes < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "heap limit %d", opts.MaxBytes)
	}

	src := opts.Source
	if src == nil {
		src = GoSource{}
	}

	var log logrus.FieldLogger = opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Heap{
		chunkSize: helpers.AlignUp(uint64(chunkSize), WordSize),
		maxBytes:  uint64(opts.MaxBytes),
		source:    src,
		log:       log,
	}, nil
}

type segment struct {
	base uint64
	mem  []byte
}

func (s *segment) end() uint64 {
	return s.base + uint64(len(s.mem))
}

// Heap is a bump allocator over segments acquired from a Source. Nothing it
// hands out is ever freed; Close releases the whole arena at once.
// A Heap is not safe for concurrent use.
type Heap struct {
	chunkSize uint64
	maxBytes  uint64
	source    Source
	log       logrus.FieldLogger

	// slot i covers addresses [i*chunkSize, (i+1)*chunkSize); a large segment
	// occupies several consecutive slots.
	slots []*segment
	cur   *segment
	top   uint64
	stats Stats
}

type Stats struct {
	Allocs    uint64 // number of successful Alloc calls
	Allocated uint64 // bytes handed out
	Reserved  uint64 // bytes acquired from the source
	Segments  uint64
}

// Alloc returns a zeroed, word aligned block of at least n bytes.
func (h *Heap) Alloc(n int) (Ref, error) {
	if n < 0 {
		return Nil, errors.Wrapf(ErrInvalidSize, "alloc %d bytes", n)
	}

	size := helpers.AlignUp(uint64(helpers.Max(n, WordSize)), WordSize)
	if h.maxBytes > 0 && h.stats.Allocated+size > h.maxBytes {
		return Nil, errors.Wrapf(
			ErrOutOfMemory,
			"alloc %d bytes with %d of %d in use", size, h.stats.Allocated, h.maxBytes,
		)
	}

	if h.cur == nil || h.top+size > h.cur.end() {
		if err := h.grow(size); err != nil {
			return Nil, err
		}
	}

	ref := Ref(h.top)
	h.top += size
	clear(h.span(uint64(ref), size))

	h.stats.Allocs++
	h.stats.Allocated += size
	return ref, nil
}

func (h *Heap) grow(size uint64) error {
	base := uint64(len(h.slots)) * h.chunkSize
	segSize := helpers.Max(h.chunkSize, helpers.AlignUp(size, h.chunkSize))
	if base == 0 && size+WordSize > segSize {
		// first segment also carries the reserved nil word
		segSize += h.chunkSize
	}

	mem, err := h.source.Acquire(int(segSize))
	if err != nil {
		return errors.Wrapf(ErrOutOfMemory, "acquire %d bytes: %v", segSize, err)
	}

	seg := &segment{base: base, mem: mem}
	for i := uint64(0); i < segSize/h.chunkSize; i++ {
		h.slots = append(h.slots, seg)
	}

	h.cur = seg
	h.top = seg.base
	if h.top == 0 {
		h.top = WordSize
	}

	h.stats.Segments++
	h.stats.Reserved += segSize
	h.log.WithFields(logrus.Fields{
		"base": seg.base,
		"size": segSize,
	}).Debug("heap segment acquired")
	return nil
}

// span returns the n bytes at addr. It panics with ErrBadAddress when the
// range is not inside a single segment.
func (h *Heap) span(addr, n uint64) []byte {
	idx := addr / h.chunkSize
	if addr == uint64(Nil) || idx >= uint64(len(h.slots)) {
		panic(errors.Wrapf(ErrBadAddress, "%#x", addr))
	}

	seg := h.slots[idx]
	off := addr - seg.base
	if off+n > uint64(len(seg.mem)) {
		panic(errors.Wrapf(ErrBadAddress, "%#x+%d", addr, n))
	}
	return seg.mem[off : off+n : off+n]
}

func (h *Heap) addr(ref Ref, off int) uint64 {
	return uint64(int64(ref) + int64(off))
}

// Load reads the word at ref+off. off may be negative.
func (h *Heap) Load(ref Ref, off int) Word {
	return Word(bin.Uint64(h.span(h.addr(ref, off), WordSize)))
}

// Store writes w at ref+off. off may be negative.
func (h *Heap) Store(ref Ref, off int, w Word) {
	bin.PutUint64(h.span(h.addr(ref, off), WordSize), uint64(w))
}

// Bytes returns a view of the n bytes starting at ref.
func (h *Heap) Bytes(ref Ref, n int) []byte {
	if n == 0 {
		return []byte{}
	}
	return h.span(uint64(ref), uint64(n))
}

func (h *Heap) Stats() Stats {
	return h.stats
}

// Close releases every segment back to its source. The heap must not be
// used afterwards.
func (h *Heap) Close() error {
	var last *segment
	for _, seg := range h.slots {
		if seg == last {
			continue
		}
		last = seg
		if err := h.source.Release(seg.mem); err != nil {
			return errors.Wrapf(err, "failed to release segment at %#x", seg.base)
		}
	}

	h.slots = nil
	h.cur = nil
	h.top = 0
	return nil
}
