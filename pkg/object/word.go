package object

import "go-minirt/pkg/heap"

func BoolWord(b bool) heap.Word {
	if b {
		return 1
	}
	return 0
}

func WordBool(w heap.Word) bool { return w != 0 }

func IntWord(v int64) heap.Word { return heap.Word(v) }

func WordInt(w heap.Word) int64 { return int64(w) }

func RefWord(r heap.Ref) heap.Word { return heap.Word(r) }

func WordRef(w heap.Word) heap.Ref { return heap.Ref(w) }
