// SPDX-License-Identifier: MIT

package stats

// Probability returns the empirical probability of drawing v from xs:
// count(v) / len(xs).
// Errors: ErrEmpty.
func Probability(xs []float64, v float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opProbability, ErrEmpty)
	}
	hits := 0
	for _, x := range xs {
		if x == v {
			hits++
		}
	}

	return float64(hits) / float64(len(xs)), nil
}

// ProbabilityAny returns the probability of drawing any member of set from xs.
// Repeated members of set count once, so the result never exceeds 1.
// An empty set has probability 0.
// Errors: ErrEmpty for an empty sample.
func ProbabilityAny(xs []float64, set ...float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opProbability, ErrEmpty)
	}
	members := make(map[float64]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	hits := 0
	for _, x := range xs {
		if _, ok := members[x]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(xs)), nil
}
