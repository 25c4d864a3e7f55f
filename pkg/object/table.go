package object

import (
	"go-minirt/pkg/heap"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Func is a method body. this is the receiver object, args are raw words
// whose meaning is fixed by the method's contract.
type Func func(rt *Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error)

type Method struct {
	Name  string
	Arity int
	Fn    Func
}

// Table is the dispatch table of one class. Slot order is significant:
// Invoke resolves a method by its slot index.
type Table struct {
	id      heap.Word
	class   string
	methods []Method
	slots   map[string]int
}

// NewTable builds a dispatch table. Its id is the xxhash64 fingerprint of
// the class name and the method names in slot order; 0 is reserved for
// unset headers.
func NewTable(class string, methods ...Method) (*Table, error) {
	t := &Table{
		class:   class,
		methods: make([]Method, len(methods)),
		slots:   make(map[string]int, len(methods)),
	}

	d := xxhash.New()
	_, _ = d.WriteString(class)
	for i, m := range methods {
		if m.Fn == nil {
			return nil, errors.Wrapf(ErrBadSlot, "%s.%s has no body", class, m.Name)
		}
		if _, ok := t.slots[m.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateMethod, "%s.%s", class, m.Name)
		}
		t.methods[i] = m
		t.slots[m.Name] = i

		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(m.Name)
	}

	t.id = heap.Word(d.Sum64())
	if t.id == 0 {
		t.id = 1
	}
	return t, nil
}

func (t *Table) ID() heap.Word { return t.id }
func (t *Table) Class() string { return t.class }
func (t *Table) Len() int      { return len(t.methods) }

// Slot returns the slot index of the named method.
func (t *Table) Slot(name string) (int, bool) {
	slot, ok := t.slots[name]
	return slot, ok
}

func (t *Table) Method(slot int) (Method, bool) {
	if slot < 0 || slot >= len(t.methods) {
		return Method{}, false
	}
	return t.methods[slot], true
}

func (t *Table) Names() []string {
	names := make([]string, len(t.methods))
	for i, m := range t.methods {
		names[i] = m.Name
	}
	return names
}
