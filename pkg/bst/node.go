package bst

import (
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"
	"go-minirt/pkg/stack"
)

// NewNode allocates a Tree object on rt's heap and initialises it with key.
func NewNode(rt *object.Runtime, key int64) (Node, error) {
	ref, err := rt.NewObject(treeTable, NodeSize)
	if err != nil {
		return Node{}, err
	}

	n := wrap(rt, ref)
	n.Init(key)
	return n, nil
}

// Wrap returns the handle of an existing Tree object.
func Wrap(rt *object.Runtime, ref heap.Ref) Node {
	return wrap(rt, ref)
}

func wrap(rt *object.Runtime, ref heap.Ref) Node {
	return Node{rt: rt, ref: ref}
}

// Node is a typed handle on a heap resident Tree object. Every method is
// resolved through the object's dispatch table. Handles alias; copying one
// never copies the node.
type Node struct {
	rt  *object.Runtime
	ref heap.Ref
}

func (n Node) Ref() heap.Ref { return n.ref }

// IsNil reports whether n is the sentinel or an empty handle.
func (n Node) IsNil() bool { return n.ref == heap.Nil }

func (n Node) send(slot int, args ...heap.Word) (heap.Word, error) {
	return n.rt.Invoke(n.ref, slot, args...)
}

// call panics when dispatch fails: a Tree object with a broken header is a
// corrupted heap.
func (n Node) call(slot int, args ...heap.Word) heap.Word {
	w, err := n.send(slot, args...)
	if err != nil {
		panic(err)
	}
	return w
}

func (n Node) Init(key int64) bool {
	return object.WordBool(n.call(slotInit, object.IntWord(key)))
}

func (n Node) SetRight(c Node) { n.call(slotSetRight, object.RefWord(c.ref)) }
func (n Node) SetLeft(c Node)  { n.call(slotSetLeft, object.RefWord(c.ref)) }

// GetRight returns the raw right slot, meaningful only when HasRight.
func (n Node) GetRight() Node { return wrap(n.rt, object.WordRef(n.call(slotGetRight))) }

// GetLeft returns the raw left slot, meaningful only when HasLeft.
func (n Node) GetLeft() Node { return wrap(n.rt, object.WordRef(n.call(slotGetLeft))) }

// Right returns the right child if it is present.
func (n Node) Right() (Node, bool) {
	if !n.HasRight() {
		return Node{}, false
	}
	return n.GetRight(), true
}

// Left returns the left child if it is present.
func (n Node) Left() (Node, bool) {
	if !n.HasLeft() {
		return Node{}, false
	}
	return n.GetLeft(), true
}

func (n Node) Key() int64       { return object.WordInt(n.call(slotGetKey)) }
func (n Node) SetKey(key int64) { n.call(slotSetKey, object.IntWord(key)) }

func (n Node) HasRight() bool { return object.WordBool(n.call(slotGetHasRight)) }
func (n Node) HasLeft() bool  { return object.WordBool(n.call(slotGetHasLeft)) }

func (n Node) SetHasLeft(v bool)  { n.call(slotSetHasLeft, object.BoolWord(v)) }
func (n Node) SetHasRight(v bool) { n.call(slotSetHasRight, object.BoolWord(v)) }

func (n Node) Compare(a, b int64) bool {
	return object.WordBool(n.call(slotCompare, object.IntWord(a), object.IntWord(b)))
}

// Insert adds key below n. Keys equal to a node's key go right, so
// duplicates are kept. The only possible error is heap.ErrOutOfMemory.
func (n Node) Insert(key int64) error {
	_, err := n.send(slotInsert, object.IntWord(key))
	return err
}

// Delete removes the first node holding key and reports whether one was
// found.
func (n Node) Delete(key int64) bool {
	return object.WordBool(n.call(slotDelete, object.IntWord(key)))
}

func (n Node) Remove(parent, c Node) {
	n.call(slotRemove, object.RefWord(parent.ref), object.RefWord(c.ref))
}

func (n Node) RemoveRight(parent, c Node) {
	n.call(slotRemoveRight, object.RefWord(parent.ref), object.RefWord(c.ref))
}

func (n Node) RemoveLeft(parent, c Node) {
	n.call(slotRemoveLeft, object.RefWord(parent.ref), object.RefWord(c.ref))
}

func (n Node) Search(key int64) bool {
	return object.WordBool(n.call(slotSearch, object.IntWord(key)))
}

// Print writes the keys below n to the runtime's sink in order.
func (n Node) Print() { n.call(slotPrint) }

func (n Node) RecPrint(c Node) { n.call(slotRecPrint, object.RefWord(c.ref)) }

func (n Node) myNull() Node {
	return wrap(n.rt, object.WordRef(n.rt.Field(n.ref, fieldMyNull)))
}

// Walk visits the keys below n in order until fn returns false.
func (n Node) Walk(fn func(key int64) bool) {
	s := stack.New[Node](16)
	cur, ok := n, true
	for ok || !s.Empty() {
		for ok {
			s.Push(cur)
			cur, ok = cur.Left()
		}

		top := s.Pop()
		if !fn(top.Key()) {
			return
		}
		cur, ok = top.Right()
	}
}
