package domain

// TransportKind is the category of a TransportMode.
type TransportKind string

const (
	KindBus       TransportKind = "bus"
	KindTaxi      TransportKind = "taxi"
	KindTrain     TransportKind = "train"
	KindMetro     TransportKind = "metro"
	KindGbaka     TransportKind = "gbaka"
	KindWoro      TransportKind = "woro"
	KindCarRental TransportKind = "car_rental"
)

// TransportMode is one entry of the fixed transport catalog.
type TransportMode struct {
	ID    string
	Name  string
	Kind  TransportKind
	Icon  string
	Color string
}

// transportModes is the fixed catalog, in display order.
var transportModes = []TransportMode{
	{ID: "sotra", Name: "Bus SOTRA", Kind: KindBus, Icon: "🚌", Color: "#FF6B35"},
	{ID: "yango", Name: "Yango Taxi", Kind: KindTaxi, Icon: "🚕", Color: "#4A90E2"},
	{ID: "gbaka", Name: "Gbaka", Kind: KindGbaka, Icon: "🚐", Color: "#F7B731"},
	{ID: "woro", Name: "Woro-Woro", Kind: KindWoro, Icon: "🏍️", Color: "#26A65B"},
	{ID: "train", Name: "Train", Kind: KindTrain, Icon: "🚆", Color: "#8E44AD"},
	{ID: "metro", Name: "Métro", Kind: KindMetro, Icon: "🚇", Color: "#E74C3C"},
	{ID: "location", Name: "Location de voiture", Kind: KindCarRental, Icon: "🚗", Color: "#3498DB"},
}

// TransportModes returns a copy of the fixed transport catalog.
func TransportModes() []TransportMode {
	out := make([]TransportMode, len(transportModes))
	copy(out, transportModes)
	return out
}

// TransportModeByID looks up a catalog entry by id.
func TransportModeByID(id string) (TransportMode, bool) {
	for _, m := range transportModes {
		if m.ID == id {
			return m, true
		}
	}
	return TransportMode{}, false
}

// TransportOption is one synthesized offer for a specific origin-destination
// pair. Options are created per search and never mutated afterwards.
type TransportOption struct {
	ID       string
	Mode     TransportMode
	Price    int     // FCFA
	Duration int     // minutes
	Distance float64 // km

	Stops       []string
	NearestStop string
	// NearestStopDistance is in meters; nil when NearestStop is empty.
	NearestStopDistance *int

	SecurityRating int // 1-5
	ComfortRating  int // 1-5

	Route []Point
}
