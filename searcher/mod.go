package searcher

// Playout decides which stones a trial places.
type Playout int

const (
	// PlayoutSingleSided places only the searching player's stones: the first
	// half of a random permutation of the empty cells.
	PlayoutSingleSided Playout = iota
	// PlayoutAlternating interleaves both colours along the permutation, the
	// searching player first. It exists to measure the single-sided playout
	// against a two-sided one and is not the default.
	PlayoutAlternating
)

func (p Playout) String() string {
	if p == PlayoutAlternating {
		return "alternating"
	}
	return "single"
}

// ParsePlayout maps "single" and "alternating" to a Playout.
func ParsePlayout(name string) (Playout, bool) {
	switch name {
	case "single", "":
		return PlayoutSingleSided, true
	case "alternating":
		return PlayoutAlternating, true
	default:
		return PlayoutSingleSided, false
	}
}
