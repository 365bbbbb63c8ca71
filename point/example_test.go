package point_test

import (
	"fmt"

	"github.com/ptkyaw/sahtree/point"
)

// ExamplePoint3D demonstrates the Point3D reference implementation
// satisfying the point.Point contract.
func ExamplePoint3D() {
	a := point.NewPoint3D(1, 2, 3)
	b := point.NewPoint3D(4, 5, 6)

	fmt.Println(a.CmpOn(b, 0))
	fmt.Println(a.DistSq(b))
	// Output:
	// Less
	// 27
}
