package object

import (
	"math"
	"os"

	"go-minirt/pkg/heap"
	"go-minirt/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Heap            *heap.Heap
	Out             Sink
	MethodCacheSize uint32
	Logger          logrus.FieldLogger
}

func New(opts *Options) (*Runtime, error) {
	if opts == nil || opts.Heap == nil {
		return nil, ErrNoHeap
	}

	cache, err := newMethodCache(opts.MethodCacheSize)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = WriterSink{os.Stdout}
	}

	var log logrus.FieldLogger = opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Runtime{
		heap:   opts.Heap,
		out:    out,
		tables: map[heap.Word]*Table{},
		cache:  cache,
		log:    log,
	}, nil
}

// Runtime allocates objects and arrays on a heap and dispatches method
// calls through the dispatch table named in each object's header.
//
// Object layout, ref pointing at the header:
//
//	| table id | field 0 | field 1 | ... |
//
// Array layout, ref pointing at element 0:
//
//	| length | e0 | e1 | ... |
//
// A Runtime is not safe for concurrent use.
type Runtime struct {
	heap   *heap.Heap
	out    Sink
	tables map[heap.Word]*Table
	cache  *methodCache
	log    logrus.FieldLogger
}

func (rt *Runtime) Heap() *heap.Heap        { return rt.heap }
func (rt *Runtime) Out() Sink               { return rt.out }
func (rt *Runtime) Log() logrus.FieldLogger { return rt.log }

// Register makes t resolvable from object headers. Registering the same
// table twice is a no-op.
func (rt *Runtime) Register(t *Table) error {
	if existing, ok := rt.tables[t.id]; ok {
		if existing == t {
			return nil
		}
		return errors.Wrapf(ErrTableCollision, "%s and %s share id %#x", existing.class, t.class, t.id)
	}

	rt.tables[t.id] = t
	rt.log.WithFields(logrus.Fields{
		"class": t.class,
		"id":    uint64(t.id),
		"slots": len(t.methods),
	}).Debug("dispatch table registered")
	return nil
}

// NewObject allocates an object of size payload bytes whose header refers
// to t. The payload is zeroed.
func (rt *Runtime) NewObject(t *Table, size int) (heap.Ref, error) {
	if size < 0 {
		return heap.Nil, errors.Wrapf(heap.ErrInvalidSize, "%s object of %d bytes", t.class, size)
	}
	if size > math.MaxInt-heap.WordSize {
		return heap.Nil, errors.Wrapf(heap.ErrOutOfMemory, "%s object of %d bytes", t.class, size)
	}
	if err := rt.Register(t); err != nil {
		return heap.Nil, err
	}

	ref, err := rt.heap.Alloc(size + heap.WordSize)
	if err != nil {
		return heap.Nil, errors.Wrapf(err, "failed to allocate %s object", t.class)
	}

	rt.heap.Store(ref, 0, t.id)
	rt.log.WithFields(logrus.Fields{
		"class": t.class,
		"ref":   uint64(ref),
		"size":  size,
	}).Debug("object allocated")
	return ref, nil
}

// NewArray allocates length zeroed elements. The returned reference points
// at element 0; the length sits one word before it.
func (rt *Runtime) NewArray(length int) (heap.Ref, error) {
	if length < 0 {
		return heap.Nil, errors.Wrapf(heap.ErrInvalidSize, "array of %d elements", length)
	}
	if length > math.MaxInt/heap.WordSize-1 {
		return heap.Nil, errors.Wrapf(heap.ErrOutOfMemory, "array of %d elements", length)
	}

	block, err := rt.heap.Alloc((length + 1) * heap.WordSize)
	if err != nil {
		return heap.Nil, errors.Wrapf(err, "failed to allocate array of %d elements", length)
	}

	rt.heap.Store(block, 0, heap.Word(length))
	rt.log.WithFields(logrus.Fields{
		"ref":    uint64(block) + heap.WordSize,
		"length": length,
	}).Debug("array allocated")
	return block + heap.WordSize, nil
}

func (rt *Runtime) ArrayLength(arr heap.Ref) int {
	return int(rt.heap.Load(arr, -heap.WordSize))
}

func (rt *Runtime) ArrayLoad(arr heap.Ref, i int) (heap.Word, error) {
	if err := rt.checkIndex(arr, i); err != nil {
		return 0, err
	}
	return rt.heap.Load(arr, i*heap.WordSize), nil
}

func (rt *Runtime) ArrayStore(arr heap.Ref, i int, w heap.Word) error {
	if err := rt.checkIndex(arr, i); err != nil {
		return err
	}
	rt.heap.Store(arr, i*heap.WordSize, w)
	return nil
}

func (rt *Runtime) checkIndex(arr heap.Ref, i int) error {
	if n := rt.ArrayLength(arr); i < 0 || i >= n {
		return errors.Wrapf(ErrOutOfBounds, "index %d of array with length %d", i, n)
	}
	return nil
}

// Field reads payload field k of the object at ref.
func (rt *Runtime) Field(ref heap.Ref, k int) heap.Word {
	return rt.heap.Load(ref, (k+1)*heap.WordSize)
}

func (rt *Runtime) SetField(ref heap.Ref, k int, w heap.Word) {
	rt.heap.Store(ref, (k+1)*heap.WordSize, w)
}

// TableOf returns the dispatch table named in the header of ref.
func (rt *Runtime) TableOf(ref heap.Ref) (*Table, error) {
	id := rt.heap.Load(ref, 0)
	t, ok := rt.tables[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTable, "object %#x has table id %#x", ref, id)
	}
	return t, nil
}

// Invoke calls the method at slot of this's dispatch table.
func (rt *Runtime) Invoke(this heap.Ref, slot int, args ...heap.Word) (heap.Word, error) {
	t, err := rt.TableOf(this)
	if err != nil {
		return 0, err
	}

	m, ok := t.Method(slot)
	if !ok {
		return 0, errors.Wrapf(ErrBadSlot, "%s has no slot %d", t.class, slot)
	}
	return rt.call(t, m, this, args)
}

// Send calls the method named selector on this.
func (rt *Runtime) Send(this heap.Ref, selector string, args ...heap.Word) (heap.Word, error) {
	t, err := rt.TableOf(this)
	if err != nil {
		return 0, err
	}

	slot, err := rt.cache.resolve(t, selector)
	if err != nil {
		return 0, err
	}
	return rt.call(t, t.methods[slot], this, args)
}

func (rt *Runtime) call(t *Table, m Method, this heap.Ref, args []heap.Word) (heap.Word, error) {
	if len(args) != m.Arity {
		return 0, errors.Wrapf(ErrArity, "%s.%s takes %d, got %d", t.class, m.Name, m.Arity, len(args))
	}
	return m.Fn(rt, this, args...)
}

type CacheStats struct {
	Hits   uint64
	Misses uint64
}

func (rt *Runtime) CacheStats() CacheStats {
	return CacheStats{rt.cache.hits, rt.cache.misses}
}
