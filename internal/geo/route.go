package geo

import "github.com/pkordes/abidjan-route/internal/domain"

// RouteSteps is the number of equal segments SampleRoute divides a trip into.
const RouteSteps = 5

// SampleRoute returns RouteSteps+1 points linearly interpolated between from
// and to, endpoints included. It draws a straight line for display only; it
// is not a routing engine.
func SampleRoute(from, to domain.Point) []domain.Point {
	points := make([]domain.Point, 0, RouteSteps+1)
	for i := 0; i <= RouteSteps; i++ {
		ratio := float64(i) / RouteSteps
		points = append(points, domain.Point{
			Lat: from.Lat + (to.Lat-from.Lat)*ratio,
			Lng: from.Lng + (to.Lng-from.Lng)*ratio,
		})
	}
	return points
}
