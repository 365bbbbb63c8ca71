package point

// Point3D is a fixed-dimension (k=3) Point, matching the 3-D points
// used in the original tooling's seed tests and examples.
type Point3D struct {
	X, Y, Z float64
}

// NewPoint3D constructs a Point3D from its three coordinates.
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

func (p Point3D) Dim() int { return 3 }

func (p Point3D) Coord(a int) float64 {
	switch a {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic("point: Point3D axis out of range")
	}
}

func (p Point3D) CmpOn(other Point, a int) Ordering {
	return cmpFloat64(p.Coord(a), other.Coord(a))
}

func (p Point3D) DistSq(other Point) float64 {
	dx := p.X - other.Coord(0)
	dy := p.Y - other.Coord(1)
	dz := p.Z - other.Coord(2)
	return dx*dx + dy*dy + dz*dz
}
