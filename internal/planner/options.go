// Package planner synthesizes transport options for a trip and picks the
// recommended one. Everything here is pure and deterministic: the same
// origin and destination always yield the same options, ids included.
package planner

import (
	"math"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/geo"
)

// TrainMinDistanceKm is the distance a trip must exceed before a train
// option is offered.
const TrainMinDistanceKm = 10.0

// offer describes how one transport mode turns a distance into an option.
type offer struct {
	id       string
	modeID   string
	price    func(km float64) int
	duration func(km float64) int
	security int
	comfort  int

	stops        func(from, to domain.Location) []string
	nearestStop  func(from domain.Location) string
	nearestStopM int

	// available reports whether the mode serves a trip of this length.
	// Nil means always available.
	available func(km float64) bool
}

// flat returns a price function that ignores distance.
func flat(v int) func(float64) int {
	return func(float64) int { return v }
}

// linear returns round(km*perKm + base).
func linear(perKm, base float64) func(float64) int {
	return func(km float64) int { return int(math.Round(km*perKm + base)) }
}

func fixedLabel(label string) func(domain.Location) string {
	return func(domain.Location) string { return label }
}

// offers is the fixed synthesis policy, in output order. Car rental must
// stay last.
var offers = []offer{
	{
		id: "opt-sotra", modeID: "sotra",
		price: flat(200), duration: linear(6, 20),
		security: 4, comfort: 3,
		stops: func(from, to domain.Location) []string {
			return []string{"Arrêt " + from.Name, "Adjamé Gare", "Arrêt " + to.Name}
		},
		nearestStop:  func(from domain.Location) string { return "Arrêt SOTRA " + from.Name },
		nearestStopM: 350,
	},
	{
		id: "opt-yango", modeID: "yango",
		price: linear(400, 1000), duration: linear(3, 10),
		security: 5, comfort: 5,
		nearestStop: fixedLabel("Votre position"),
	},
	{
		id: "opt-gbaka", modeID: "gbaka",
		price: flat(150), duration: linear(4, 15),
		security: 3, comfort: 2,
		stops: func(from, to domain.Location) []string {
			return []string{"Terminus " + from.Name, "Gare routière", "Terminus " + to.Name}
		},
		nearestStop:  func(from domain.Location) string { return "Station Gbaka " + from.Name },
		nearestStopM: 280,
	},
	{
		id: "opt-woro", modeID: "woro",
		price: linear(300, 500), duration: linear(2.5, 8),
		security: 3, comfort: 3,
		nearestStop: fixedLabel("Votre position"),
	},
	{
		id: "opt-train", modeID: "train",
		price: flat(400), duration: linear(2, 15),
		security: 4, comfort: 4,
		stops: func(from, to domain.Location) []string {
			return []string{"Gare " + from.Name, "Gare centrale", "Gare " + to.Name}
		},
		nearestStop:  func(from domain.Location) string { return "Gare de " + from.Name },
		nearestStopM: 800,
		available:    func(km float64) bool { return km > TrainMinDistanceKm },
	},
	{
		id: "opt-location", modeID: "location",
		price: linear(500, 5000), duration: linear(3, 5),
		security: 5, comfort: 5,
		nearestStop:  fixedLabel("Agence de location"),
		nearestStopM: 500,
	},
}

// GenerateOptions returns the transport options for a trip from one location
// to another. Four base options are always present, a train is added when the
// trip is longer than TrainMinDistanceKm, and car rental is always last.
//
// Every option shares the same distance and the same straight-line route.
func GenerateOptions(from, to domain.Location) []domain.TransportOption {
	km := geo.DistanceKm(from.Point(), to.Point())

	options := make([]domain.TransportOption, 0, len(offers))
	for _, o := range offers {
		if o.available != nil && !o.available(km) {
			continue
		}
		options = append(options, o.build(from, to, km))
	}
	return options
}

func (o offer) build(from, to domain.Location, km float64) domain.TransportOption {
	mode, ok := domain.TransportModeByID(o.modeID)
	if !ok {
		// The offers table and the mode catalog are both compiled in.
		panic("planner: offer references unknown transport mode " + o.modeID)
	}

	opt := domain.TransportOption{
		ID:             o.id,
		Mode:           mode,
		Price:          o.price(km),
		Duration:       o.duration(km),
		Distance:       km,
		SecurityRating: o.security,
		ComfortRating:  o.comfort,
		Route:          geo.SampleRoute(from.Point(), to.Point()),
	}
	if o.stops != nil {
		opt.Stops = o.stops(from, to)
	}
	if o.nearestStop != nil {
		opt.NearestStop = o.nearestStop(from)
		m := o.nearestStopM
		opt.NearestStopDistance = &m
	}
	return opt
}
