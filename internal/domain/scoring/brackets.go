package scoring

// Bracket awards Points to any value at or above Min and below the Min of
// the bracket ranked just above it.
type Bracket struct {
	Min    float64
	Points int
}

// Table is a set of brackets ordered by Min, highest first.
type Table []Bracket

// Award returns the points of the single bracket v falls into, or 0 when v
// is below every bracket (NaN included).
func (t Table) Award(v float64) int {
	for _, b := range t {
		if v >= b.Min {
			return b.Points
		}
	}
	return 0
}

// Bracket tables of the MVP rule.
var (
	pointsTable = Table{
		{Min: 33.9, Points: 10},
		{Min: 30.4, Points: 9},
		{Min: 26.9, Points: 8},
		{Min: 26.6, Points: 7},
	}
	assistsTable = Table{
		{Min: 9.8, Points: 10},
		{Min: 9.0, Points: 9},
		{Min: 6.5, Points: 8},
		{Min: 6.2, Points: 7},
		{Min: 4.9, Points: 6},
	}
	reboundsTable = Table{
		{Min: 12.4, Points: 10},
		{Min: 11.5, Points: 9},
		{Min: 9.2, Points: 8},
		{Min: 8.1, Points: 7},
		{Min: 5.6, Points: 6},
	}
)

// teamRankBase is the value team rank is subtracted from: rank 1 earns 10,
// rank 10 earns 1, anything past 11 goes negative.
const teamRankBase = 11
