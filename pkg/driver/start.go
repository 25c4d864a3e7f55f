package driver

import (
	"go-minirt/pkg/bst"
	"go-minirt/pkg/object"
)

// Marker is printed between the first two prints of Start.
const Marker = 100000000

// Start runs the binary tree demonstration program against rt and returns
// its exit value.
func Start(rt *object.Runtime) (int64, error) {
	out := rt.Out()

	root, err := bst.NewNode(rt, 16)
	if err != nil {
		return 0, err
	}
	root.Print()
	out.Println(Marker)

	if err := root.Insert(8); err != nil {
		return 0, err
	}
	root.Print()

	for _, k := range []int64{24, 4, 12, 20, 28, 14} {
		if err := root.Insert(k); err != nil {
			return 0, err
		}
	}
	root.Print()

	for _, k := range []int64{24, 12, 16, 50, 12} {
		out.Println(flag(root.Search(k)))
	}

	root.Delete(12)
	root.Print()
	out.Println(flag(root.Search(12)))
	return 0, nil
}

func flag(b bool) int64 {
	return object.WordInt(object.BoolWord(b))
}
