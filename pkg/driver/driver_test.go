package driver

import (
	"os"
	"strings"
	"testing"

	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var startOutput = []int64{
	16,
	Marker,
	8, 16,
	4, 8, 12, 14, 16, 20, 24, 28,
	1, 1, 1, 0, 1,
	4, 8, 14, 16, 20, 24, 28,
	0,
}

func newRuntime(t *testing.T) (*object.Runtime, *object.Recorder) {
	h, err := heap.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })

	out := &object.Recorder{}
	rt, err := object.New(&object.Options{Heap: h, Out: out})
	require.NoError(t, err)
	return rt, out
}

func TestStart(t *testing.T) {
	rt, out := newRuntime(t)

	ret, err := Start(rt)
	require.NoError(t, err)
	require.Zero(t, ret)
	require.Equal(t, startOutput, out.Values)
}

func TestStartOutOfMemory(t *testing.T) {
	h, err := heap.New(&heap.Options{MaxBytes: 256})
	require.NoError(t, err)
	defer h.Close()

	rt, err := object.New(&object.Options{Heap: h, Out: &object.Recorder{}})
	require.NoError(t, err)

	_, err = Start(rt)
	require.True(t, errors.Is(err, heap.ErrOutOfMemory))
}

func TestRunScript(t *testing.T) {
	rt, out := newRuntime(t)

	f, err := os.Open("testdata/binarytree.script")
	require.NoError(t, err)
	defer f.Close()

	r := NewRunner(rt)
	require.NoError(t, r.Run(f))
	require.Equal(t, startOutput, out.Values)
	require.NotEqual(t, heap.Nil, r.Receiver())

	stats := rt.CacheStats()
	require.Equal(t, uint64(5), stats.Misses)
	require.NotZero(t, stats.Hits)
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name   string
		script string
		err    error
		line   string
	}{
		{"no receiver", "Insert 3", ErrNoReceiver, "line 1"},
		{"bad argument", "new\nInit x", ErrSyntax, "line 2"},
		{"bare println", "new\nInit 1\nprintln", ErrSyntax, "line 3"},
		{"new with two operands", "new 5 6", ErrSyntax, "line 1"},
		{"new with bad key", "new x", ErrSyntax, "line 1"},
		{"println new", "println new", ErrSyntax, "line 1"},
		{"init before new", "Init 16", ErrNoReceiver, "line 1"},
		{"unknown selector", "new\nInit 1\nBalance", object.ErrNoSuchMethod, "line 3"},
		{"arity", "new\nInit 1 2", object.ErrArity, "line 2"},
		{"not an object", "new\nInit 1\nRecPrint 4096", object.ErrUnknownTable, "line 3"},
		{"bad address", "new\nInit 1\nRecPrint 1099511627776", heap.ErrBadAddress, "line 3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rt, _ := newRuntime(t)
			err := NewRunner(rt).Run(strings.NewReader(c.script))
			require.Error(t, err)
			require.True(t, errors.Is(err, c.err), err.Error())
			require.Contains(t, err.Error(), c.line)
		})
	}
}

func TestCommentsAndBlankLines(t *testing.T) {
	rt, out := newRuntime(t)

	script := "# header\n\nnew\n  Init 3  \n# mid\nprintln GetKey\nprintln -7\n"
	require.NoError(t, NewRunner(rt).Run(strings.NewReader(script)))
	require.Equal(t, []int64{3, -7}, out.Values)
}

func TestNewWithKey(t *testing.T) {
	rt, out := newRuntime(t)

	script := "new 16\nInsert 8\nInsert 24\nprintln GetKey\nPrint\nnew\nprintln GetKey\n"
	require.NoError(t, NewRunner(rt).Run(strings.NewReader(script)))
	require.Equal(t, []int64{16, 8, 16, 24, 0}, out.Values)
}
