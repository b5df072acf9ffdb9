package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// cellSizeKm is the approximate width (at the equator) and height of a
// geohash cell for precisions 1 through 7.
var cellSizeKm = [...]struct{ width, height float64 }{
	{5009.4, 4992.6},
	{1252.3, 624.1},
	{156.5, 156.0},
	{39.1, 19.5},
	{4.89, 4.89},
	{1.22, 0.61},
	{0.153, 0.152},
}

// Hash encodes p as a geohash of the given precision.
func Hash(p domain.Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, precision)
}

// PrecisionForRadius returns the finest geohash precision whose cells are at
// least radiusKm across at latitude lat, so that a cell and its eight
// neighbours cover every point within radiusKm of any point in the cell.
// It returns 0 when even precision 1 is too small.
func PrecisionForRadius(lat, radiusKm float64) uint {
	shrink := math.Cos(lat * deg2rad)
	for i := len(cellSizeKm) - 1; i >= 0; i-- {
		size := cellSizeKm[i]
		if math.Min(size.width*shrink, size.height) >= radiusKm {
			return uint(i + 1)
		}
	}
	return 0
}

// CoveringCells returns the geohash of the cell containing center plus its
// eight neighbours at the given precision.
func CoveringCells(center domain.Point, precision uint) []string {
	h := Hash(center, precision)
	return append([]string{h}, geohash.Neighbors(h)...)
}
