package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptkyaw/sahtree/partition"
	"github.com/ptkyaw/sahtree/point"
)

// S4 — partition.
func TestSplit_S4(t *testing.T) {
	ps := []point.Point{
		point.NewPoint3D(1, 2, 3),
		point.NewPoint3D(2, 3, 4),
		point.NewPoint3D(3, 4, 5),
		point.NewPoint3D(4, 5, 6),
	}

	left, right := partition.Split(ps, 0, 2.5)

	assert.Equal(t, ps[:2], left)
	assert.Equal(t, ps[2:], right)
}

func TestSplit_TieGoesRight(t *testing.T) {
	ps := []point.Point{
		point.NewPoint3D(1, 0, 0),
		point.NewPoint3D(2, 0, 0),
		point.NewPoint3D(2, 0, 0),
		point.NewPoint3D(3, 0, 0),
	}

	left, right := partition.Split(ps, 0, 2)

	assert.Len(t, left, 1)
	assert.Len(t, right, 3)
}

func TestSplit_PreservesOrder(t *testing.T) {
	ps := []point.Point{
		point.NewPoint3D(4, 0, 0),
		point.NewPoint3D(1, 0, 0),
		point.NewPoint3D(3, 0, 0),
		point.NewPoint3D(2, 0, 0),
	}

	left, right := partition.Split(ps, 0, 2.5)

	assert.Equal(t, []point.Point{ps[1], ps[3]}, left)
	assert.Equal(t, []point.Point{ps[0], ps[2]}, right)
}

func TestSplit_AllLeftOrAllRight(t *testing.T) {
	ps := []point.Point{
		point.NewPoint3D(1, 0, 0),
		point.NewPoint3D(1, 0, 0),
	}
	left, right := partition.Split(ps, 0, 5)
	assert.Len(t, left, 2)
	assert.Empty(t, right)

	left, right = partition.Split(ps, 0, -5)
	assert.Empty(t, left)
	assert.Len(t, right, 2)
}
