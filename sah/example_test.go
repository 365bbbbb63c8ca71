package sah_test

import (
	"fmt"

	"github.com/ptkyaw/sahtree/point"
	"github.com/ptkyaw/sahtree/sah"
)

// ExampleSelect demonstrates the minimum-cost split found for a small
// point set (S2 from the seed tests: axis 0, candidate v=2.5, cost 216).
func ExampleSelect() {
	ps := []point.Point{
		point.NewPoint3D(1, 2, 3),
		point.NewPoint3D(4, 5, 6),
		point.NewPoint3D(7, 8, 9),
	}

	split, _ := sah.Select(ps, 3)
	fmt.Printf("axis=%d value=%v cost=%v\n", split.Axis, split.Value, split.Cost)
	// Output:
	// axis=0 value=2.5 cost=216
}
