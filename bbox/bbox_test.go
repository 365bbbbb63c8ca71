package bbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptkyaw/sahtree/bbox"
	"github.com/ptkyaw/sahtree/point"
)

func pts3(coords ...[3]float64) []point.Point {
	out := make([]point.Point, len(coords))
	for i, c := range coords {
		out[i] = point.NewPoint3D(c[0], c[1], c[2])
	}
	return out
}

// S6 — bounding box & surface area.
func TestCompute_S6(t *testing.T) {
	ps := pts3([3]float64{1, 2, 3}, [3]float64{2, 3, 4}, [3]float64{3, 4, 5}, [3]float64{4, 5, 6})
	b := bbox.Compute(ps, 3)

	assert.Equal(t, []float64{1, 2, 3}, b.Min)
	assert.Equal(t, []float64{4, 5, 6}, b.Max)
}

func TestSurfaceArea_S6(t *testing.T) {
	b := bbox.BBox{K: 3, Min: []float64{0, 0, 0}, Max: []float64{1, 2, 3}}
	assert.Equal(t, 22.0, b.SurfaceArea())
}

func TestCompute_Empty(t *testing.T) {
	b := bbox.Compute(nil, 3)
	require.True(t, b.IsEmpty())
	assert.Equal(t, 0.0, b.SurfaceArea())
}

func TestSurfaceArea_2D(t *testing.T) {
	b := bbox.BBox{K: 2, Min: []float64{0, 0}, Max: []float64{2, 3}}
	// k=2 degenerates to 2*(e0*e1 + e1*e0) = 4*e0*e1
	assert.Equal(t, 4*2.0*3.0, b.SurfaceArea())
}

func TestCompute_SinglePoint(t *testing.T) {
	ps := pts3([3]float64{5, 5, 5})
	b := bbox.Compute(ps, 3)
	assert.Equal(t, []float64{5, 5, 5}, b.Min)
	assert.Equal(t, []float64{5, 5, 5}, b.Max)
	assert.Equal(t, 0.0, b.SurfaceArea())
}
