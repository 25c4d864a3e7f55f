package object

import (
	"bytes"
	"math"
	"testing"

	"go-minirt/pkg/heap"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newRuntime(t *testing.T, heapOpts *heap.Options) (*Runtime, *Recorder) {
	h, err := heap.New(heapOpts)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })

	out := &Recorder{}
	rt, err := New(&Options{Heap: h, Out: out, MethodCacheSize: 8})
	require.NoError(t, err)
	return rt, out
}

// counter is a tiny class with one field: | table | count |
func counterTable(t *testing.T) *Table {
	tbl, err := NewTable("Counter",
		Method{"Get", 0, func(rt *Runtime, this heap.Ref, _ ...heap.Word) (heap.Word, error) {
			return rt.Field(this, 0), nil
		}},
		Method{"Add", 1, func(rt *Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
			rt.SetField(this, 0, rt.Field(this, 0)+args[0])
			return 1, nil
		}},
		Method{"Print", 0, func(rt *Runtime, this heap.Ref, _ ...heap.Word) (heap.Word, error) {
			rt.Out().Println(WordInt(rt.Field(this, 0)))
			return 1, nil
		}},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewObjectZeroed(t *testing.T) {
	rt, _ := newRuntime(t, &heap.Options{ChunkSize: 128})
	tbl := counterTable(t)

	for _, size := range []int{0, 8, 13, 48, 200} {
		ref, err := rt.NewObject(tbl, size)
		require.NoError(t, err)
		require.Equal(t, tbl.ID(), rt.Heap().Load(ref, 0))

		payload := rt.Heap().Bytes(ref+heap.WordSize, size)
		require.Equal(t, make([]byte, size), payload)

		got, err := rt.TableOf(ref)
		require.NoError(t, err)
		require.Same(t, tbl, got)
	}

	_, err := rt.NewObject(tbl, -1)
	require.True(t, errors.Is(err, heap.ErrInvalidSize))
}

func TestNewArrayHeader(t *testing.T) {
	rt, _ := newRuntime(t, &heap.Options{ChunkSize: 128})

	for _, n := range []int{0, 1, 5, 64} {
		arr, err := rt.NewArray(n)
		require.NoError(t, err)
		require.Equal(t, n, rt.ArrayLength(arr))
		require.Equal(t, heap.Word(n), rt.Heap().Load(arr, -heap.WordSize))

		for i := 0; i < n; i++ {
			w, err := rt.ArrayLoad(arr, i)
			require.NoError(t, err)
			require.Zero(t, w)
			require.NoError(t, rt.ArrayStore(arr, i, heap.Word(i*i)))
		}
		for i := 0; i < n; i++ {
			w, err := rt.ArrayLoad(arr, i)
			require.NoError(t, err)
			require.Equal(t, heap.Word(i*i), w)
		}

		_, err = rt.ArrayLoad(arr, n)
		require.True(t, errors.Is(err, ErrOutOfBounds))
		require.True(t, errors.Is(rt.ArrayStore(arr, -1, 0), ErrOutOfBounds))
		require.Equal(t, n, rt.ArrayLength(arr))
	}

	_, err := rt.NewArray(-3)
	require.True(t, errors.Is(err, heap.ErrInvalidSize))
}

func TestOutOfMemory(t *testing.T) {
	rt, _ := newRuntime(t, &heap.Options{MaxBytes: 64})
	tbl := counterTable(t)

	_, err := rt.NewObject(tbl, 48)
	require.NoError(t, err)

	_, err = rt.NewObject(tbl, 48)
	require.True(t, errors.Is(err, heap.ErrOutOfMemory))

	_, err = rt.NewArray(10)
	require.True(t, errors.Is(err, heap.ErrOutOfMemory))

	_, err = rt.NewObject(tbl, math.MaxInt)
	require.True(t, errors.Is(err, heap.ErrOutOfMemory))
	_, err = rt.NewObject(tbl, math.MaxInt-heap.WordSize)
	require.True(t, errors.Is(err, heap.ErrOutOfMemory))
}

func TestInvokeAndSend(t *testing.T) {
	rt, out := newRuntime(t, nil)
	tbl := counterTable(t)

	obj, err := rt.NewObject(tbl, heap.WordSize)
	require.NoError(t, err)

	addSlot, ok := tbl.Slot("Add")
	require.True(t, ok)
	_, err = rt.Invoke(obj, addSlot, IntWord(5))
	require.NoError(t, err)

	_, err = rt.Send(obj, "Add", IntWord(-2))
	require.NoError(t, err)
	_, err = rt.Send(obj, "Add", IntWord(10))
	require.NoError(t, err)

	w, err := rt.Send(obj, "Get")
	require.NoError(t, err)
	require.Equal(t, int64(13), WordInt(w))

	_, err = rt.Send(obj, "Print")
	require.NoError(t, err)
	require.Equal(t, []int64{13}, out.Values)

	require.Equal(t, CacheStats{Hits: 1, Misses: 3}, rt.CacheStats())

	_, err = rt.Send(obj, "Reset")
	require.True(t, errors.Is(err, ErrNoSuchMethod))

	_, err = rt.Invoke(obj, tbl.Len())
	require.True(t, errors.Is(err, ErrBadSlot))

	_, err = rt.Send(obj, "Add")
	require.True(t, errors.Is(err, ErrArity))
}

func TestUnknownTable(t *testing.T) {
	rt, _ := newRuntime(t, nil)

	raw, err := rt.Heap().Alloc(16)
	require.NoError(t, err)
	rt.Heap().Store(raw, 0, 0xdead)

	_, err = rt.TableOf(raw)
	require.True(t, errors.Is(err, ErrUnknownTable))
	_, err = rt.Send(raw, "Get")
	require.True(t, errors.Is(err, ErrUnknownTable))
}

func TestTableDefinition(t *testing.T) {
	noop := func(*Runtime, heap.Ref, ...heap.Word) (heap.Word, error) { return 0, nil }

	a, err := NewTable("A", Method{"X", 0, noop}, Method{"Y", 0, noop})
	require.NoError(t, err)
	b, err := NewTable("A", Method{"X", 0, noop}, Method{"Y", 0, noop})
	require.NoError(t, err)
	c, err := NewTable("A", Method{"Y", 0, noop}, Method{"X", 0, noop})
	require.NoError(t, err)

	require.NotZero(t, a.ID())
	require.Equal(t, a.ID(), b.ID())
	require.NotEqual(t, a.ID(), c.ID())
	require.Equal(t, []string{"X", "Y"}, a.Names())

	rt, _ := newRuntime(t, nil)
	require.NoError(t, rt.Register(a))
	require.NoError(t, rt.Register(a))
	require.True(t, errors.Is(rt.Register(b), ErrTableCollision))

	_, err = NewTable("B", Method{"X", 0, noop}, Method{"X", 0, noop})
	require.True(t, errors.Is(err, ErrDuplicateMethod))
	_, err = NewTable("B", Method{"X", 0, nil})
	require.True(t, errors.Is(err, ErrBadSlot))
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := WriterSink{&buf}
	s.Println(4)
	s.Println(-8)
	require.Equal(t, "4\n-8\n", buf.String())
}

func TestNoHeap(t *testing.T) {
	_, err := New(&Options{})
	require.Equal(t, ErrNoHeap, err)
}

func TestNewSink(t *testing.T) {
	s, err := NewSink("stdout", nil)
	require.NoError(t, err)
	require.IsType(t, WriterSink{}, s)

	s, err = NewSink("log", logrus.New())
	require.NoError(t, err)
	require.IsType(t, LogSink{}, s)

	_, err = NewSink("printer", nil)
	require.True(t, errors.Is(err, ErrUnknownSink))
}
