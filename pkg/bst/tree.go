package bst

import (
	"go-minirt/pkg/object"

	"github.com/sirupsen/logrus"
)

// Tree owns an optional root node. Unlike a bare Node used as the tree
// handle, a Tree can be empty: inserting into an empty tree allocates the
// root and deleting the last key clears it. The detached root stays on the
// heap since nothing is ever freed.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	rt      *object.Runtime
	root    Node
	hasRoot bool
	log     logrus.FieldLogger
}

func New(rt *object.Runtime) *Tree {
	return &Tree{
		rt:  rt,
		log: rt.Log().WithField("component", "bst"),
	}
}

func (t *Tree) Root() (Node, bool) {
	return t.root, t.hasRoot
}

func (t *Tree) Insert(key int64) error {
	if t.hasRoot {
		return t.root.Insert(key)
	}

	root, err := NewNode(t.rt, key)
	if err != nil {
		return err
	}
	t.root, t.hasRoot = root, true
	t.log.WithField("key", key).Debug("root allocated")
	return nil
}

func (t *Tree) Search(key int64) bool {
	return t.hasRoot && t.root.Search(key)
}

// Delete removes the first node holding key. Removing the only key leaves
// the tree empty.
func (t *Tree) Delete(key int64) bool {
	if !t.hasRoot {
		return false
	}

	if !t.root.HasLeft() && !t.root.HasRight() {
		if t.root.Key() != key {
			return false
		}
		t.root, t.hasRoot = Node{}, false
		t.log.WithField("key", key).Debug("tree emptied")
		return true
	}
	return t.root.Delete(key)
}

func (t *Tree) Print() {
	if t.hasRoot {
		t.root.Print()
	}
}

// Keys returns the keys in order.
func (t *Tree) Keys() []int64 {
	keys := []int64{}
	if t.hasRoot {
		t.root.Walk(func(key int64) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

func (t *Tree) Len() int {
	n := 0
	if t.hasRoot {
		t.root.Walk(func(int64) bool {
			n++
			return true
		})
	}
	return n
}
