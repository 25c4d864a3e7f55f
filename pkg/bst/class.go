package bst

import (
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"
)

// payload fields of a Tree object, in word offsets after the header
const (
	fieldLeft = iota
	fieldRight
	fieldKey
	fieldHasLeft
	fieldHasRight
	fieldMyNull

	fieldCount
)

// NodeSize is the payload size of a Tree object in bytes.
const NodeSize = fieldCount * heap.WordSize

// dispatch slots of the Tree class
const (
	slotInit = iota
	slotSetRight
	slotSetLeft
	slotGetRight
	slotGetLeft
	slotGetKey
	slotSetKey
	slotGetHasRight
	slotGetHasLeft
	slotSetHasLeft
	slotSetHasRight
	slotCompare
	slotInsert
	slotDelete
	slotRemove
	slotRemoveRight
	slotRemoveLeft
	slotSearch
	slotPrint
	slotRecPrint
)

var treeTable *object.Table

func init() {
	t, err := object.NewTable("Tree",
		object.Method{Name: "Init", Arity: 1, Fn: treeInit},
		object.Method{Name: "SetRight", Arity: 1, Fn: setter(fieldRight)},
		object.Method{Name: "SetLeft", Arity: 1, Fn: setter(fieldLeft)},
		object.Method{Name: "GetRight", Arity: 0, Fn: getter(fieldRight)},
		object.Method{Name: "GetLeft", Arity: 0, Fn: getter(fieldLeft)},
		object.Method{Name: "GetKey", Arity: 0, Fn: getter(fieldKey)},
		object.Method{Name: "SetKey", Arity: 1, Fn: setter(fieldKey)},
		object.Method{Name: "GetHas_Right", Arity: 0, Fn: getter(fieldHasRight)},
		object.Method{Name: "GetHas_Left", Arity: 0, Fn: getter(fieldHasLeft)},
		object.Method{Name: "SetHas_Left", Arity: 1, Fn: setter(fieldHasLeft)},
		object.Method{Name: "SetHas_Right", Arity: 1, Fn: setter(fieldHasRight)},
		object.Method{Name: "Compare", Arity: 2, Fn: treeCompare},
		object.Method{Name: "Insert", Arity: 1, Fn: treeInsert},
		object.Method{Name: "Delete", Arity: 1, Fn: treeDelete},
		object.Method{Name: "Remove", Arity: 2, Fn: treeRemove},
		object.Method{Name: "RemoveRight", Arity: 2, Fn: treeRemoveRight},
		object.Method{Name: "RemoveLeft", Arity: 2, Fn: treeRemoveLeft},
		object.Method{Name: "Search", Arity: 1, Fn: treeSearch},
		object.Method{Name: "Print", Arity: 0, Fn: treePrint},
		object.Method{Name: "RecPrint", Arity: 1, Fn: treeRecPrint},
	)
	if err != nil {
		panic(err)
	}
	treeTable = t
}

// Class returns the dispatch table of Tree objects.
func Class() *object.Table {
	return treeTable
}
