package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Downtown Ann Arbor, the reference point used across the suite.
const (
	annArborLat = 42.2808
	annArborLon = -83.7483
)

func TestCircle_Inside_CenterAndFar(t *testing.T) {
	fence := NewCircle(annArborLat, annArborLon, 200)

	assert.True(t, fence.Inside(annArborLat, annArborLon), "center is inside")
	assert.False(t, fence.Inside(42.30, -83.80), "a point kilometers away is outside")
	assert.False(t, fence.Inside(42.2808, -83.7583), "roughly 800m west is outside a 200m fence")
}

func TestCircle_Inside_NearBoundary(t *testing.T) {
	fence := NewCircle(annArborLat, annArborLon, 200)

	// One degree of latitude is ~111.32km, so ~0.0018 degrees is ~200m.
	justInside := annArborLat + 195.0/111320.0
	justOutside := annArborLat + 210.0/111320.0

	assert.True(t, fence.Inside(justInside, annArborLon))
	assert.False(t, fence.Inside(justOutside, annArborLon))
}

func TestCircle_Contains_BoundaryEpsilon(t *testing.T) {
	fence := NewCircle(annArborLat, annArborLon, 200)

	// A point sitting within epsilon of the boundary counts as inside.
	onBoundary := annArborLat + 200.0/111320.0
	d := fence.Distance(onBoundary, annArborLon)
	require.InDelta(t, 200, d, 1.0, "sanity: constructed point sits on the boundary")

	assert.True(t, fence.Contains(orb.Point{annArborLon, onBoundary}, DefaultBoundaryEpsilon))
	assert.False(t, fence.Contains(orb.Point{annArborLon, onBoundary}, -5.0),
		"a negative epsilon shrinks the fence past the constructed point")
}

func TestCircle_Distance_IsSymmetric(t *testing.T) {
	a := NewCircle(annArborLat, annArborLon, 0)
	b := NewCircle(42.30, -83.80, 0)

	dAB := a.Distance(42.30, -83.80)
	dBA := b.Distance(annArborLat, annArborLon)

	assert.InDelta(t, dAB, dBA, 1e-6)
	assert.Greater(t, dAB, 0.0)
}

func TestCircle_Inside_RandomizedMonotonicity(t *testing.T) {
	// Containment must be monotone in the radius: any point inside a fence
	// stays inside every larger fence at the same center.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		lat := annArborLat + (rng.Float64()-0.5)*0.02
		lon := annArborLon + (rng.Float64()-0.5)*0.02
		radius := 50 + rng.Float64()*500

		small := NewCircle(annArborLat, annArborLon, radius)
		large := NewCircle(annArborLat, annArborLon, radius*2)

		if small.Inside(lat, lon) {
			assert.True(t, large.Inside(lat, lon),
				"point inside %0.0fm fence must be inside %0.0fm fence", radius, radius*2)
		}
	}
}

func TestCircle_Inside_AgreesWithDistance(t *testing.T) {
	fence := NewCircle(annArborLat, annArborLon, 200)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		lat := annArborLat + (rng.Float64()-0.5)*0.01
		lon := annArborLon + (rng.Float64()-0.5)*0.01

		d := fence.Distance(lat, lon)
		// Skip points that land inside the epsilon band around the boundary.
		if math.Abs(d-200) <= DefaultBoundaryEpsilon {
			continue
		}

		assert.Equal(t, d < 200, fence.Inside(lat, lon),
			"containment must agree with the distance at %0.2fm", d)
	}
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(annArborLat, annArborLon))
	assert.True(t, ValidCoordinate(90, 180))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.False(t, ValidCoordinate(90.01, 0))
	assert.False(t, ValidCoordinate(0, -180.01))
}
