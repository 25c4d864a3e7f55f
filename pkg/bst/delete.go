package bst

import (
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"

	"github.com/sirupsen/logrus"
)

// treeDelete walks from this to the first node holding key. A matching
// node without children that is the subject of the call stays in place;
// every other match is handed to Remove together with its parent.
func treeDelete(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	key := object.WordInt(args[0])

	self := wrap(rt, this)
	cur, parent := self, self
	isRoot := true
	for {
		k := cur.Key()
		switch {
		case key < k:
			if !cur.HasLeft() {
				return object.BoolWord(false), nil
			}
			parent, cur = cur, cur.GetLeft()
		case k < key:
			if !cur.HasRight() {
				return object.BoolWord(false), nil
			}
			parent, cur = cur, cur.GetRight()
		default:
			if isRoot && !cur.HasLeft() && !cur.HasRight() {
				rt.Log().WithField("key", key).Debug("delete of isolated root ignored")
			} else {
				self.Remove(parent, cur)
			}
			return object.BoolWord(true), nil
		}
		isRoot = false
	}
}

func treeRemove(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	self := wrap(rt, this)
	parent := wrap(rt, object.WordRef(args[0]))
	n := wrap(rt, object.WordRef(args[1]))

	switch {
	case n.HasLeft():
		self.RemoveLeft(parent, n)
	case n.HasRight():
		self.RemoveRight(parent, n)
	default:
		// n is a leaf; find the side of parent it hangs on. An unset left
		// slot holds the sentinel and is never compared.
		if parent.HasLeft() && self.Compare(n.Key(), parent.GetLeft().Key()) {
			parent.SetLeft(self.myNull())
			parent.SetHasLeft(false)
		} else {
			parent.SetRight(self.myNull())
			parent.SetHasRight(false)
		}
	}
	return 1, nil
}

// treeRemoveLeft shifts keys up the left spine starting at n and unlinks
// the last spine node from its parent. Right subtrees of spine nodes are
// not relinked: the last node's right subtree leaves the tree with it.
func treeRemoveLeft(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	self := wrap(rt, this)
	parent := wrap(rt, object.WordRef(args[0]))
	n := wrap(rt, object.WordRef(args[1]))

	steps := 0
	for n.HasLeft() {
		n.SetKey(n.GetLeft().Key())
		parent, n = n, n.GetLeft()
		steps++
	}
	logUnlink(rt, "left", n, steps)

	parent.SetLeft(self.myNull())
	parent.SetHasLeft(false)
	return 1, nil
}

// treeRemoveRight mirrors treeRemoveLeft along the right spine.
func treeRemoveRight(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	self := wrap(rt, this)
	parent := wrap(rt, object.WordRef(args[0]))
	n := wrap(rt, object.WordRef(args[1]))

	steps := 0
	for n.HasRight() {
		n.SetKey(n.GetRight().Key())
		parent, n = n, n.GetRight()
		steps++
	}
	logUnlink(rt, "right", n, steps)

	parent.SetRight(self.myNull())
	parent.SetHasRight(false)
	return 1, nil
}

func logUnlink(rt *object.Runtime, side string, last Node, steps int) {
	log := rt.Log().WithFields(logrus.Fields{
		"side":  side,
		"steps": steps,
		"node":  uint64(last.Ref()),
	})
	if (side == "left" && last.HasRight()) || (side == "right" && last.HasLeft()) {
		log.Debug("spine repair detached a subtree")
		return
	}
	log.Debug("spine repair")
}
