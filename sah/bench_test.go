package sah_test

import (
	"math/rand"
	"testing"

	"github.com/ptkyaw/sahtree/point"
	"github.com/ptkyaw/sahtree/sah"
)

// BenchmarkSelect measures the cost of picking a split over a fixed
// 3-D point set, following the teacher's benchmark style of building
// the fixture once outside the timed loop.
func BenchmarkSelect(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	ps := make([]point.Point, 2000)
	for i := range ps {
		ps[i] = point.NewPoint3D(rng.Float64()*100, rng.Float64()*100, rng.Float64()*100)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sah.Select(ps, 3)
	}
}
