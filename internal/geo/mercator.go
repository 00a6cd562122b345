// Package geo implements the Web Mercator pixel projection and geohash
// cell keys used by the map view.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// TileSize is the side length of a map tile in pixels.
const TileSize = 256

const (
	MinZoom = 0
	MaxZoom = 21

	// Web Mercator is undefined at the poles; latitudes are clamped to
	// the conventional cutoff.
	maxLatitude = 85.05112878
)

// ClampZoom limits a zoom level to the supported range.
func ClampZoom(zoom int) int {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

// Project maps a WGS84 coordinate to Web Mercator world pixel coordinates
// at the given zoom level. The world at zoom z is a square of
// TileSize * 2^z pixels; (0,0) is the top-left (north-west) corner.
func Project(lat, lng float64, zoom int) (x, y int) {
	lat = clamp(lat, -maxLatitude, maxLatitude)
	lng = clamp(lng, -180, 180)

	sinLat := math.Sin(lat * math.Pi / 180)

	worldX := (lng + 180) / 360
	worldY := 0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)

	scale := float64(TileSize) * math.Exp2(float64(ClampZoom(zoom)))
	x = int(math.Floor(worldX * scale))
	y = int(math.Floor(worldY * scale))

	// Keep the boundary coordinates inside the world square: lng=180 and
	// lat=-maxLatitude land on scale, and rounding error at the clamped
	// north latitude can push worldY a hair below zero.
	limit := int(scale) - 1
	if x > limit {
		x = limit
	}
	if x < 0 {
		x = 0
	}
	if y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Cell returns a geohash cell key for grouping nearby pins. Precision
// grows with zoom so cells roughly track what a user sees on screen.
func Cell(lat, lng float64, zoom int) string {
	return geohash.EncodeWithPrecision(lat, lng, cellPrecision(zoom))
}

func cellPrecision(zoom int) uint {
	switch {
	case zoom < 6:
		return 3
	case zoom < 10:
		return 4
	case zoom < 13:
		return 5
	case zoom < 16:
		return 6
	default:
		return 7
	}
}
