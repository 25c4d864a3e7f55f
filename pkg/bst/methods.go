package bst

import (
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"
)

func getter(field int) object.Func {
	return func(rt *object.Runtime, this heap.Ref, _ ...heap.Word) (heap.Word, error) {
		return rt.Field(this, field), nil
	}
}

func setter(field int) object.Func {
	return func(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
		rt.SetField(this, field, args[0])
		return 1, nil
	}
}

func treeInit(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	rt.SetField(this, fieldKey, args[0])
	rt.SetField(this, fieldHasLeft, 0)
	rt.SetField(this, fieldHasRight, 0)
	return 1, nil
}

// treeCompare reports whether a lies in [b, b+1), which over integers
// means a == b.
func treeCompare(_ *object.Runtime, _ heap.Ref, args ...heap.Word) (heap.Word, error) {
	a, b := object.WordInt(args[0]), object.WordInt(args[1])
	return object.BoolWord(a == b), nil
}

func treeInsert(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	key := object.WordInt(args[0])

	newNode, err := NewNode(rt, key)
	if err != nil {
		return 0, err
	}

	cur := wrap(rt, this)
	for {
		if key < cur.Key() {
			if cur.HasLeft() {
				cur = cur.GetLeft()
				continue
			}
			cur.SetHasLeft(true)
			cur.SetLeft(newNode)
			return 1, nil
		}

		if cur.HasRight() {
			cur = cur.GetRight()
			continue
		}
		cur.SetHasRight(true)
		cur.SetRight(newNode)
		return 1, nil
	}
}

func treeSearch(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	key := object.WordInt(args[0])

	cur := wrap(rt, this)
	for {
		k := cur.Key()
		switch {
		case key < k:
			if !cur.HasLeft() {
				return object.BoolWord(false), nil
			}
			cur = cur.GetLeft()
		case k < key:
			if !cur.HasRight() {
				return object.BoolWord(false), nil
			}
			cur = cur.GetRight()
		default:
			return object.BoolWord(true), nil
		}
	}
}

func treePrint(rt *object.Runtime, this heap.Ref, _ ...heap.Word) (heap.Word, error) {
	self := wrap(rt, this)
	self.RecPrint(self)
	return 1, nil
}

func treeRecPrint(rt *object.Runtime, this heap.Ref, args ...heap.Word) (heap.Word, error) {
	self := wrap(rt, this)
	n := wrap(rt, object.WordRef(args[0]))

	if n.HasLeft() {
		self.RecPrint(n.GetLeft())
	}
	rt.Out().Println(n.Key())
	if n.HasRight() {
		self.RecPrint(n.GetRight())
	}
	return 1, nil
}
