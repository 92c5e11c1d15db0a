package odds

import "strconv"

// ImpliedProbability converts American odds to a win probability in
// [0, 1]. The bookmaker's vig is still baked in, so the two sides of a
// game sum to slightly more than 1
func ImpliedProbability(american int) float64 {
	if american > 0 {
		return 100.0 / (float64(american) + 100.0)
	}

	abs := float64(-american)
	return abs / (abs + 100.0)
}

// RemoveVig rescales a pair of implied probabilities into percentages
// that sum to 100 while preserving their ratio. A zero pair stays zero
// instead of dividing by it
func RemoveVig(probA, probB float64) (float64, float64) {
	total := probA + probB
	if total == 0 {
		return 0, 0
	}

	return probA / total * 100, probB / total * 100
}

// FormatOdds renders American odds the way sportsbooks print them,
// with an explicit plus sign on positive values. Zero stays unsigned
func FormatOdds(american int) string {
	if american > 0 {
		return "+" + strconv.Itoa(american)
	}
	return strconv.Itoa(american)
}
