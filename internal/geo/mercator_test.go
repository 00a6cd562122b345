package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampZoom(t *testing.T) {
	assert.Equal(t, MinZoom, ClampZoom(-3))
	assert.Equal(t, 7, ClampZoom(7))
	assert.Equal(t, MaxZoom, ClampZoom(99))
}

func TestProjectOrigin(t *testing.T) {
	// The null island sits at the center of the world square.
	x, y := Project(0, 0, 0)
	assert.Equal(t, 128, x)
	assert.Equal(t, 128, y)

	x, y = Project(0, 0, 1)
	assert.Equal(t, 256, x)
	assert.Equal(t, 256, y)
}

func TestProjectStaysInsideWorld(t *testing.T) {
	// The antimeridian and the latitude cutoff land on the last pixel,
	// not one past it.
	x, _ := Project(0, 180, 0)
	assert.Equal(t, 255, x)

	_, y := Project(-90, 0, 0)
	assert.Equal(t, 255, y)

	x, y = Project(90, -180, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestProjectClampsNorthEdge(t *testing.T) {
	// The exact cutoff latitude underflows worldY by a few ulps, which
	// floors to -1 unless clamped; the pixel must stay in row 0.
	for _, zoom := range []int{0, 5, 12, 21} {
		_, y := Project(85.05112878, 0, zoom)
		assert.Equal(t, 0, y, "zoom %d", zoom)
	}
}

func TestProjectAxesOrientation(t *testing.T) {
	// East means larger x, north means smaller y.
	xWest, _ := Project(0, -58, 12)
	xEast, _ := Project(0, -57, 12)
	assert.Less(t, xWest, xEast)

	_, ySouth := Project(-16, 0, 12)
	_, yNorth := Project(-15, 0, 12)
	assert.Less(t, yNorth, ySouth)
}

func TestProjectZoomDoubles(t *testing.T) {
	x1, y1 := Project(-15.1217, -58.0036, 10)
	x2, y2 := Project(-15.1217, -58.0036, 11)

	// One zoom step doubles the world size; allow for floor rounding.
	assert.InDelta(t, float64(2*x1), float64(x2), 1)
	assert.InDelta(t, float64(2*y1), float64(y2), 1)
}

func TestCellPrecisionGrowsWithZoom(t *testing.T) {
	lat, lng := -15.1217, -58.0036

	assert.Len(t, Cell(lat, lng, 3), 3)
	assert.Len(t, Cell(lat, lng, 8), 4)
	assert.Len(t, Cell(lat, lng, 12), 5)
	assert.Len(t, Cell(lat, lng, 14), 6)
	assert.Len(t, Cell(lat, lng, 18), 7)
}

func TestCellGroupsNearbyPoints(t *testing.T) {
	a := Cell(-15.1217, -58.0036, 3)
	b := Cell(-15.1250, -58.0100, 3)
	assert.Equal(t, a, b)
}
