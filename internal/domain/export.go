package domain

// ExportRow is a single row of the option comparison export.
// It is a flat, denormalized view: one row per option, with the search
// fields repeated on every row.
type ExportRow struct {
	// Search fields, repeated for every option.
	From      string
	To        string
	Criterion string

	// Option fields.
	OptionID       string
	Mode           string
	Price          int
	Duration       int
	Distance       float64
	SecurityRating int
	ComfortRating  int
	Score          float64
	Recommended    bool

	// Stops are the intermediate stop names, in travel order.
	Stops []string
}
